package tz

import (
	"time"

	"github.com/golang/groupcache/lru"
)

const defaultCacheSize = 64

const secondsPerDay = 24 * 60 * 60

// zonePeriod is a span of time during which a location has a fixed offset. A zero start or end is unbounded.
type zonePeriod struct {
	name       string
	offset     int
	start, end time.Time
}

func (p *zonePeriod) contains(t time.Time) bool {
	return (p.start.IsZero() || !t.Before(p.start)) && (p.end.IsZero() || t.Before(p.end))
}

// A DateCache memoizes zone offset computations for a single location. Entries are keyed by UTC day and remember the
// bounds of the zone period they were computed from, so lookups on either side of a transition stay exact.
//
// The cache does not know which location its entries were computed for; it must be reset whenever the location
// changes. DateCache is not safe for concurrent use.
type DateCache struct {
	entries *lru.Cache

	hits, misses int
}

// NewDateCache creates a cache that holds up to size entries.
func NewDateCache(size int) *DateCache {
	return &DateCache{entries: lru.New(size)}
}

// Offset returns the abbreviated zone name and offset in seconds east of UTC at t in loc.
func (c *DateCache) Offset(loc *time.Location, t time.Time) (string, int) {
	key := dayKey(t)
	if v, ok := c.entries.Get(key); ok {
		if p := v.(*zonePeriod); p.contains(t) {
			c.hits++
			return p.name, p.offset
		}
	}
	c.misses++

	lt := t.In(loc)
	name, offset := lt.Zone()
	start, end := lt.ZoneBounds()
	c.entries.Add(key, &zonePeriod{name: name, offset: offset, start: start, end: end})
	return name, offset
}

// Reset drops all entries.
func (c *DateCache) Reset() {
	c.entries.Clear()
}

// Len returns the number of cached entries.
func (c *DateCache) Len() int {
	return c.entries.Len()
}

// Stats returns the number of lookups answered from and computed outside of the cache.
func (c *DateCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

func dayKey(t time.Time) int64 {
	u := t.Unix()
	if u < 0 {
		return (u - secondsPerDay + 1) / secondsPerDay
	}
	return u / secondsPerDay
}
