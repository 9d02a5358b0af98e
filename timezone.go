package starenv

import (
	"unicode/utf16"

	"github.com/pgavlin/starlark-go/starlark"
)

// TimeZoneVariable is the name of the environment variable that controls the process time zone.
const TimeZoneVariable = "TZ"

// maxTimeZoneLength bounds the length, in UTF-16 code units, of values that are passed on to the time zone service.
const maxTimeZoneLength = 32

// TimeZone is the process-wide time zone state that is updated by writes to TZ.
type TimeZone interface {
	// SetOverride installs the named zone as the process time zone and reports whether the zone changed.
	SetOverride(name string) bool
	// Invalidate discards any cached date computations.
	Invalidate()
}

// timeZoneSlot backs the TZ property. Unlike other slots, it never becomes a plain value: every read and write
// passes through here so that writes can update the process time zone.
type timeZoneSlot struct {
	cached     starlark.Value
	enumerable bool
}

// read returns the cached value, if any. Otherwise it consults the source and caches a non-empty value.
func (s *timeZoneSlot) read(source Source) starlark.Value {
	if s.cached != nil {
		return s.cached
	}

	value, ok := source.Lookup(TimeZoneVariable)
	if !ok || value == "" {
		return starlark.None
	}
	s.cached = starlark.String(value)
	return s.cached
}

// store caches v verbatim, whether or not it named a valid zone.
func (s *timeZoneSlot) store(v starlark.Value) {
	s.cached = v
}

// applyTimeZone installs v as the process time zone if v is a short string, and invalidates the zone service's caches
// if the zone changed. It reports whether the zone changed.
func applyTimeZone(zone TimeZone, v starlark.Value) bool {
	name, ok := v.(starlark.String)
	if !ok || len(utf16.Encode([]rune(string(name)))) >= maxTimeZoneLength {
		return false
	}
	if !zone.SetOverride(string(name)) {
		return false
	}
	zone.Invalidate()
	return true
}
