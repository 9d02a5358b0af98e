package util

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/pgavlin/starlark-go/starlark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadLocals(t *testing.T) {
	thread := &starlark.Thread{}

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, Getwd(thread))
	Chdir(thread, "/tmp/scripts")
	assert.Equal(t, "/tmp/scripts", Getwd(thread))

	stdout, stderr := Stdio(thread)
	assert.Equal(t, os.Stdout, stdout)
	assert.Equal(t, os.Stderr, stderr)

	var out, errs strings.Builder
	SetStdio(thread, &out, &errs)
	stdout, stderr = Stdio(thread)
	assert.Same(t, &out, stdout)
	assert.Same(t, &errs, stderr)

	assert.Equal(t, context.Background(), GetContext(thread))
}

func TestSetContextCancels(t *testing.T) {
	thread := &starlark.Thread{}

	ctx, cancel := context.WithCancel(context.Background())
	done := SetContext(ctx, thread)
	defer done()
	assert.Equal(t, ctx, GetContext(thread))

	cancel()
	_, err := starlark.ExecFile(thread, "loop.star", "def f():\n  for x in range(1000000000):\n    pass\nf()\n", nil)
	assert.Error(t, err)
}

func TestStringList(t *testing.T) {
	var l StringList
	require.NoError(t, l.Unpack(starlark.NewList([]starlark.Value{starlark.String("go"), starlark.String("env")})))
	assert.Equal(t, StringList{"go", "env"}, l)

	assert.Error(t, l.Unpack(starlark.String("go")))
	assert.Error(t, l.Unpack(starlark.Tuple{starlark.MakeInt(1)}))
}
