package sh

import (
	"context"
	"strings"
	"testing"

	"github.com/pgavlin/starenv"
	"github.com/pgavlin/starenv/tz"
	"github.com/pgavlin/starenv/util"
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThread(t *testing.T, pairs ...string) (*starlark.Thread, *strings.Builder) {
	m, err := starenv.Build(starenv.PairsSource(pairs), &starenv.BuildOptions{TimeZone: tz.NewService()})
	require.NoError(t, err)

	var stdout strings.Builder
	thread := &starlark.Thread{Name: t.Name()}
	starenv.SetMap(thread, m)
	util.Chdir(thread, t.TempDir())
	util.SetStdio(thread, &stdout, &stdout)
	t.Cleanup(util.SetContext(context.Background(), thread))
	return thread, &stdout
}

func eval(t *testing.T, thread *starlark.Thread, expr string) (starlark.Value, error) {
	return starlark.Eval(thread, "test.star", expr, starlark.StringDict{"sh": Module})
}

func TestOutput(t *testing.T) {
	thread, _ := newThread(t, "A=a")

	v, err := eval(t, thread, `sh.output("echo $A $B", env={"B": "b"})`)
	require.NoError(t, err)
	assert.Equal(t, starlark.String("a b\n"), v)

	v, err = eval(t, thread, `sh.output("echo ok", try_=True)`)
	require.NoError(t, err)
	assert.Equal(t, starlark.Tuple{starlark.String("ok\n"), starlark.None}, v)
}

func TestOutputFailure(t *testing.T) {
	thread, _ := newThread(t)

	_, err := eval(t, thread, `sh.output("exit 3")`)
	assert.Error(t, err)

	v, err := eval(t, thread, `sh.output("exit 3", try_=True)`)
	require.NoError(t, err)
	tuple, ok := v.(starlark.Tuple)
	require.True(t, ok)
	require.Len(t, tuple, 2)
	assert.Equal(t, starlark.None, tuple[0])
	assert.Contains(t, string(tuple[1].(starlark.String)), "3")
}

func TestExec(t *testing.T) {
	thread, stdout := newThread(t, "GREETING=hello")

	v, err := eval(t, thread, `sh.exec("echo $GREETING; echo $PWD")`)
	require.NoError(t, err)
	assert.Equal(t, starlark.None, v)
	assert.Equal(t, "hello\n"+util.Getwd(thread)+"\n", stdout.String())
}

func TestParseError(t *testing.T) {
	thread, _ := newThread(t)

	_, err := eval(t, thread, `sh.exec("echo $(")`)
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	thread, _ := newThread(t, "HOME=/home/user")

	v, err := eval(t, thread, `sh.expand("${HOME}/bin:${MISSING:-/usr/bin}")`)
	require.NoError(t, err)
	assert.Equal(t, starlark.String("/home/user/bin:/usr/bin"), v)
}
