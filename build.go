package starenv

import (
	"github.com/pgavlin/starenv/tz"
	"github.com/pgavlin/starlark-go/starlark"
)

// presizeThreshold is the largest variable count for which the slot table is allocated up front.
const presizeThreshold = 63

// BuildOptions control the construction of a Map.
type BuildOptions struct {
	// TimeZone is updated by writes to TZ. Defaults to tz.Default.
	TimeZone TimeZone
	// Events receives variable events. Defaults to DiscardEvents.
	Events Events
	// MaxSlots limits the number of variables the map may hold, not counting TZ. Zero means no limit.
	MaxSlots int
}

// Build creates a Map over the given source.
//
// Each name enumerated by the source becomes a lazily-materialized property of the map, with two exceptions. Names
// that are canonical array indices are resolved immediately and stored as plain values. TZ is always present, but is
// only enumerable if the source enumerated it.
func Build(source Source, options *BuildOptions) (*Map, error) {
	if options == nil {
		options = &BuildOptions{}
	}
	zone := options.TimeZone
	if zone == nil {
		zone = tz.Default
	}
	events := options.Events
	if events == nil {
		events = DiscardEvents
	}

	names := source.Names()

	m := &Map{
		source:   source,
		zone:     zone,
		events:   events,
		maxSlots: options.MaxSlots,
		index:    map[uint32]starlark.Value{},
	}
	if len(names) < presizeThreshold {
		m.names = make([]string, 0, len(names)+1)
		m.slots = make(map[string]*slot, len(names))
	} else {
		m.slots = map[string]*slot{}
	}

	hasTZ := false
	for _, name := range names {
		if name == TimeZoneVariable {
			hasTZ = true
			continue
		}
		if name == "" {
			continue
		}

		if i, ok := parseIndex(name); ok {
			if _, has := m.index[i]; has {
				continue
			}
			if err := m.reserve(); err != nil {
				return nil, err
			}

			var value starlark.Value = starlark.None
			if v, ok := source.Lookup(name); ok {
				value = starlark.String(v)
			}
			m.index[i] = value
			continue
		}

		if _, has := m.slots[name]; has {
			continue
		}
		if err := m.reserve(); err != nil {
			return nil, err
		}
		m.slots[name] = newAccessorSlot()
		m.names = append(m.names, name)
	}

	m.tz = timeZoneSlot{enumerable: hasTZ}
	m.names = append(m.names, TimeZoneVariable)

	return m, nil
}
