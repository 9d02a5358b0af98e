// Package tz holds the process-wide time zone state: an optional override of the local time zone and a cache of
// zone offsets computed for that zone.
package tz

import (
	"strings"
	"sync"
	"time"

	// Embed the zone database so that overrides behave the same on every host.
	_ "time/tzdata"
)

// Default is the process-wide time zone service.
var Default = NewService()

// A Service tracks the active time zone and caches offset computations for it. Services are safe for concurrent use;
// concurrent overrides are last-writer-wins.
type Service struct {
	m sync.Mutex

	override string
	location *time.Location
	cache    *DateCache

	// local is the zone used when no override is installed.
	local *time.Location
}

// NewService creates a service whose zone defaults to time.Local.
func NewService() *Service {
	return newService(time.Local)
}

func newService(local *time.Location) *Service {
	return &Service{
		location: local,
		local:    local,
		cache:    NewDateCache(defaultCacheSize),
	}
}

// SetOverride installs the named zone as the active time zone. A leading ':' is ignored, as in POSIX TZ values. An
// empty name removes any override. SetOverride reports whether the active zone changed; unknown zone names leave the
// active zone as it was.
//
// SetOverride does not flush the date cache. Callers that observe a change must call Invalidate.
func (s *Service) SetOverride(name string) bool {
	name = strings.TrimPrefix(name, ":")

	s.m.Lock()
	defer s.m.Unlock()

	if name == s.override {
		return false
	}
	if name == "" {
		s.override, s.location = "", s.local
		return true
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return false
	}
	s.override, s.location = name, loc
	return true
}

// Invalidate drops all cached offset computations.
func (s *Service) Invalidate() {
	s.m.Lock()
	defer s.m.Unlock()

	s.cache.Reset()
}

// Override returns the name of the installed override, if any.
func (s *Service) Override() string {
	s.m.Lock()
	defer s.m.Unlock()

	return s.override
}

// Location returns the active time zone.
func (s *Service) Location() *time.Location {
	s.m.Lock()
	defer s.m.Unlock()

	return s.location
}

// Now returns the current time in the active time zone.
func (s *Service) Now() time.Time {
	return time.Now().In(s.Location())
}

// Offset returns the abbreviated name and offset in seconds east of UTC of the active time zone at t.
func (s *Service) Offset(t time.Time) (name string, offset int) {
	s.m.Lock()
	defer s.m.Unlock()

	return s.cache.Offset(s.location, t)
}
