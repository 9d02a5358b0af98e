package starenv

import (
	"testing"

	"github.com/pgavlin/starlark-go/starlark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	source := newTestSource("HOME=/home/user", "EMPTY=", "N=3")
	m := build(t, source, nil)
	require.NoError(t, m.Set("COUNT", starlark.MakeInt(12)))

	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"$HOME/bin", "/home/user/bin"},
		{"${HOME}bin", "/home/userbin"},
		{"${MISSING:-default}", "default"},
		{"${EMPTY:-default}", "default"},
		{"${COUNT}", "12"},
		{"${#HOME}", "10"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			actual, err := Expand(m, c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}

	// Expansion reads through the map.
	assert.Equal(t, 1, source.lookups["HOME"])
	assert.Equal(t, 0, source.lookups["N"])
}

func TestExpandCommandSubstitution(t *testing.T) {
	m := build(t, newTestSource(), nil)

	_, err := Expand(m, "$(echo hi)")
	assert.Error(t, err)
}
