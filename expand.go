package starenv

import (
	"fmt"
	"strings"

	"github.com/pgavlin/starlark-go/starlark"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// Expand performs shell-style parameter expansion of s ($NAME, ${NAME}, ${NAME:-default}, etc.) using the variables
// in m. Referenced variables are materialized. Command substitutions are rejected.
func Expand(m *Map, s string) (string, error) {
	word, err := syntax.NewParser().Document(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", s, err)
	}
	if word == nil {
		return "", nil
	}

	cfg := &expand.Config{
		Env: expand.FuncEnviron(func(name string) string {
			v, ok := m.Lookup(name)
			if !ok {
				return ""
			}
			return ValueString(v)
		}),
	}
	return expand.Literal(cfg, word)
}

// ValueString returns the text of v as it would be exported to a child process. None is exported as the empty
// string.
func ValueString(v starlark.Value) string {
	switch v := v.(type) {
	case starlark.NoneType:
		return ""
	case starlark.String:
		return string(v)
	default:
		return v.String()
	}
}
