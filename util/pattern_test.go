package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileNamePatterns(t *testing.T) {
	re, err := CompileNamePatterns(nil)
	require.NoError(t, err)
	assert.Nil(t, re)

	re, err = CompileNamePatterns([]string{"GO*", "?Z", `A\*B`, "日本*"})
	require.NoError(t, err)

	for _, name := range []string{"GO", "GOPATH", "TZ", "A*B", "日本語"} {
		assert.True(t, re.MatchString(name), name)
	}
	for _, name := range []string{"XGO", "TZZ", "AxB", "A.B", "PATH"} {
		assert.False(t, re.MatchString(name), name)
	}

	_, err = CompileNamePatterns([]string{`trailing\`})
	assert.Error(t, err)
}
