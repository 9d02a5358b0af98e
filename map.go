package starenv

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strconv"
	"sync"

	fxs "github.com/pgavlin/fx/v2/slices"
	"github.com/pgavlin/starlark-go/starlark"
)

// ErrSlotLimit is returned when a Map cannot hold any more variables.
var ErrSlotLimit = errors.New("too many environment variables")

// A Map exposes environment variables as the attributes and keys of a Starlark value. Variables are read from the
// Map's source lazily, on first access, and cached thereafter. Writes replace the cached value and are never
// propagated to the source.
//
// Names that are canonical array indices (e.g. "42") are resolved eagerly when the Map is built. The TZ variable is
// special: writing a time zone name to TZ updates the process time zone.
type Map struct {
	m sync.Mutex
	// tzm serializes TZ writes with each other and with Freeze. It is acquired before m.
	tzm sync.Mutex

	source   Source
	zone     TimeZone
	events   Events
	maxSlots int

	names []string
	slots map[string]*slot
	index map[uint32]starlark.Value
	tz    timeZoneSlot

	frozen bool
}

var (
	_ starlark.HasAttrs        = (*Map)(nil)
	_ starlark.HasSetField     = (*Map)(nil)
	_ starlark.IterableMapping = (*Map)(nil)
	_ starlark.HasSetKey       = (*Map)(nil)
	_ starlark.Sequence        = (*Map)(nil)
)

// Source returns the source that backs the map.
func (m *Map) Source() Source {
	return m.source
}

// TimeZone returns the time zone service that is updated by writes to TZ.
func (m *Map) TimeZone() TimeZone {
	return m.zone
}

// Lookup returns the value of the named variable, materializing it if necessary. The bool result is false if the
// map has no property with the given name.
func (m *Map) Lookup(name string) (starlark.Value, bool) {
	return m.get(name)
}

// Set assigns v to the named variable.
func (m *Map) Set(name string, v starlark.Value) error {
	return m.set(name, v)
}

// Names returns the names of the map's enumerable properties in enumeration order: array indices in ascending order
// followed by all other names in insertion order.
func (m *Map) Names() []string {
	m.m.Lock()
	defer m.m.Unlock()

	return m.enumerableNames()
}

// Pairs returns the map's variables as NAME=value pairs, suitable for the environment of a child process. Every
// enumerable variable is materialized; variables whose value is None are omitted. TZ is included whenever it has a
// value, even if it is not enumerable.
func (m *Map) Pairs() []string {
	names := m.Names()
	if !slices.Contains(names, TimeZoneVariable) {
		names = append(names, TimeZoneVariable)
	}

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		v, ok := m.get(name)
		if !ok || v == starlark.None {
			continue
		}
		pairs = append(pairs, name+"="+ValueString(v))
	}
	return pairs
}

// Materialized returns the number of named variables that hold a plain value.
func (m *Map) Materialized() int {
	m.m.Lock()
	defer m.m.Unlock()

	n := 0
	for _, s := range m.slots {
		if s.state == slotStored {
			n++
		}
	}
	return n
}

// NOTE: m.m must be held!
func (m *Map) enumerableNames() []string {
	indices := slices.Sorted(maps.Keys(m.index))
	names := make([]string, 0, len(indices)+len(m.names))
	for _, i := range indices {
		names = append(names, strconv.FormatUint(uint64(i), 10))
	}
	return slices.AppendSeq(names, fxs.Filter(m.names, func(name string) bool {
		if name == TimeZoneVariable {
			return m.tz.enumerable
		}
		return m.slots[name].enumerable
	}))
}

// NOTE: m.m must be held!
func (m *Map) reserve() error {
	if m.maxSlots > 0 && len(m.slots)+len(m.index) >= m.maxSlots {
		return fmt.Errorf("%w (limit %v)", ErrSlotLimit, m.maxSlots)
	}
	return nil
}

// NOTE: m.m must be held!
func (m *Map) checkMutable(name string) error {
	if m.frozen {
		return fmt.Errorf("cannot assign to %v: environ is frozen", name)
	}
	return nil
}

func (m *Map) get(name string) (starlark.Value, bool) {
	if name == TimeZoneVariable {
		m.m.Lock()
		defer m.m.Unlock()
		return m.tz.read(m.source), true
	}

	if i, ok := parseIndex(name); ok {
		m.m.Lock()
		defer m.m.Unlock()
		v, ok := m.index[i]
		return v, ok
	}

	m.m.Lock()
	s, ok := m.slots[name]
	if !ok {
		m.m.Unlock()
		return nil, false
	}
	v, materialized := s.load(name, m.source)
	m.m.Unlock()

	if materialized {
		m.events.VariableMaterialized(name)
	}
	return v, true
}

func (m *Map) set(name string, v starlark.Value) error {
	if name == TimeZoneVariable {
		return m.setTimeZone(v)
	}

	m.m.Lock()
	if err := m.checkMutable(name); err != nil {
		m.m.Unlock()
		return err
	}

	if i, ok := parseIndex(name); ok {
		if _, has := m.index[i]; !has {
			if err := m.reserve(); err != nil {
				m.m.Unlock()
				return err
			}
		}
		m.index[i] = v
	} else if s, ok := m.slots[name]; ok {
		s.store(v)
	} else {
		if err := m.reserve(); err != nil {
			m.m.Unlock()
			return err
		}
		m.slots[name] = newStoredSlot(v)
		m.names = append(m.names, name)
	}
	m.m.Unlock()

	m.events.VariableAssigned(name)
	return nil
}

func (m *Map) setTimeZone(v starlark.Value) error {
	m.tzm.Lock()

	m.m.Lock()
	err := m.checkMutable(TimeZoneVariable)
	m.m.Unlock()
	if err != nil {
		m.tzm.Unlock()
		return err
	}

	applied := applyTimeZone(m.zone, v)

	m.m.Lock()
	m.tz.store(v)
	m.m.Unlock()

	m.tzm.Unlock()

	m.events.TimeZoneAssigned(v, applied)
	return nil
}

func keyName(k starlark.Value) (string, error) {
	switch k := k.(type) {
	case starlark.String:
		return string(k), nil
	case starlark.Int:
		return k.String(), nil
	default:
		return "", fmt.Errorf("environ keys must be strings or ints, not %v", k.Type())
	}
}

func (m *Map) String() string {
	return "<environ>"
}

func (m *Map) Type() string {
	return "environ"
}

func (m *Map) Freeze() {
	m.tzm.Lock()
	defer m.tzm.Unlock()

	m.m.Lock()
	defer m.m.Unlock()

	if m.frozen {
		return
	}
	m.frozen = true
	for _, s := range m.slots {
		if s.state == slotStored {
			s.value.Freeze()
		}
	}
	for _, v := range m.index {
		v.Freeze()
	}
	if m.tz.cached != nil {
		m.tz.cached.Freeze()
	}
}

func (m *Map) Truth() starlark.Bool {
	return starlark.True
}

func (m *Map) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: environ")
}

// starlark.HasAttrs
func (m *Map) Attr(name string) (starlark.Value, error) {
	v, ok := m.get(name)
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *Map) AttrNames() []string {
	names := m.Names()
	sort.Strings(names)
	return names
}

// starlark.HasSetField
func (m *Map) SetField(name string, val starlark.Value) error {
	return m.set(name, val)
}

// starlark.Mapping
func (m *Map) Get(k starlark.Value) (v starlark.Value, found bool, err error) {
	name, err := keyName(k)
	if err != nil {
		return nil, false, err
	}
	v, found = m.get(name)
	return v, found, nil
}

// starlark.HasSetKey
func (m *Map) SetKey(k, v starlark.Value) error {
	name, err := keyName(k)
	if err != nil {
		return err
	}
	return m.set(name, v)
}

// starlark.IterableMapping
func (m *Map) Keys() []starlark.Value {
	names := m.Names()
	keys := make([]starlark.Value, len(names))
	for i, name := range names {
		keys[i] = starlark.String(name)
	}
	return keys
}

func (m *Map) Items() []starlark.Tuple {
	names := m.Names()
	items := make([]starlark.Tuple, 0, len(names))
	for _, name := range names {
		v, ok := m.get(name)
		if !ok {
			continue
		}
		items = append(items, starlark.Tuple{starlark.String(name), v})
	}
	return items
}

func (m *Map) Iterate() starlark.Iterator {
	return &keyIterator{keys: m.Keys()}
}

// starlark.Sequence
func (m *Map) Len() int {
	m.m.Lock()
	defer m.m.Unlock()

	return len(m.enumerableNames())
}

type keyIterator struct {
	keys []starlark.Value
}

func (it *keyIterator) Next(p *starlark.Value) bool {
	if len(it.keys) == 0 {
		return false
	}
	*p, it.keys = it.keys[0], it.keys[1:]
	return true
}

func (it *keyIterator) Done() {}

// SetMap binds m to the given thread. Builtins that need the environment of the running script retrieve it with
// CurrentMap.
func SetMap(thread *starlark.Thread, m *Map) {
	thread.SetLocal("environ", m)
}

// CurrentMap returns the Map bound to the given thread, if any.
func CurrentMap(thread *starlark.Thread) (*Map, bool) {
	m, ok := thread.Local("environ").(*Map)
	return m, ok
}
