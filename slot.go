package starenv

import "github.com/pgavlin/starlark-go/starlark"

type slotState int

const (
	// slotAccessor slots resolve their value from the source on read.
	slotAccessor slotState = iota
	// slotStored slots hold a plain value.
	slotStored
)

// A slot is a named property of a Map. Slots begin life as accessors and transition to stored values on their first
// successful read or on any write. The transition is one-way.
type slot struct {
	state      slotState
	value      starlark.Value
	enumerable bool
}

func newAccessorSlot() *slot {
	return &slot{state: slotAccessor, enumerable: true}
}

func newStoredSlot(v starlark.Value) *slot {
	return &slot{state: slotStored, value: v, enumerable: true}
}

// load returns the slot's value. An accessor slot consults the source; if the name is defined, the slot becomes a
// stored slot holding the value and materialized is true. An undefined name leaves the slot untouched.
func (s *slot) load(name string, source Source) (v starlark.Value, materialized bool) {
	if s.state == slotStored {
		return s.value, false
	}
	if name == "" {
		return starlark.None, false
	}

	value, ok := source.Lookup(name)
	if !ok {
		return starlark.None, false
	}
	s.store(starlark.String(value))
	return s.value, true
}

// store replaces the slot's accessor or value with v.
func (s *slot) store(v starlark.Value) {
	s.state, s.value = slotStored, v
}
