package util

import (
	"errors"
	"iter"

	"github.com/pgavlin/starlark-go/starlark"
)

// StringList unpacks a Starlark sequence of strings, e.g. the argv of a command.
type StringList []string

func (l *StringList) Unpack(v starlark.Value) error {
	seq, ok := v.(starlark.Sequence)
	if !ok {
		return errors.New("expected a sequence of strings")
	}

	strings := make([]string, 0, seq.Len())
	for e := range All(seq) {
		s, ok := starlark.AsString(e)
		if !ok {
			return errors.New("expected a sequence of strings")
		}
		strings = append(strings, s)
	}
	*l = strings
	return nil
}

// All returns an iterator over the elements of v.
func All[T starlark.Iterable](v T) iter.Seq[starlark.Value] {
	return func(yield func(starlark.Value) bool) {
		it := v.Iterate()
		defer it.Done()
		var e starlark.Value
		for it.Next(&e) {
			if !yield(e) {
				return
			}
		}
	}
}
