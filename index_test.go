package starenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIndex(t *testing.T) {
	cases := []struct {
		input    string
		expected uint32
		ok       bool
	}{
		{"0", 0, true},
		{"7", 7, true},
		{"42", 42, true},
		{"4294967294", 4294967294, true},
		{"4294967295", 0, false},
		{"9999999999", 0, false},
		{"10000000000", 0, false},
		{"", 0, false},
		{"00", 0, false},
		{"01", 0, false},
		{"1a", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{" 1", 0, false},
		{"1 ", 0, false},
		{"1.0", 0, false},
		{"HOME", 0, false},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			i, ok := parseIndex(c.input)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.expected, i)
		})
	}
}
