package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateCacheTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	c := NewDateCache(8)

	// DST began at 2024-03-10 07:00 UTC.
	before := time.Date(2024, time.March, 10, 6, 59, 59, 0, time.UTC)
	after := time.Date(2024, time.March, 10, 7, 0, 0, 0, time.UTC)

	name, offset := c.Offset(loc, before)
	assert.Equal(t, "EST", name)
	assert.Equal(t, -5*60*60, offset)

	name, offset = c.Offset(loc, after)
	assert.Equal(t, "EDT", name)
	assert.Equal(t, -4*60*60, offset)

	name, offset = c.Offset(loc, after.Add(time.Hour))
	assert.Equal(t, "EDT", name)
	assert.Equal(t, -4*60*60, offset)

	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses)
}

func TestDateCacheReset(t *testing.T) {
	c := NewDateCache(2)
	at := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	c.Offset(time.UTC, at)
	c.Offset(time.UTC, at.AddDate(0, 0, 1))
	c.Offset(time.UTC, at.AddDate(0, 0, 2))
	assert.Equal(t, 2, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())

	c.Offset(time.UTC, at)
	assert.Equal(t, 1, c.Len())
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, int64(0), dayKey(time.Unix(0, 0)))
	assert.Equal(t, int64(0), dayKey(time.Unix(secondsPerDay-1, 0)))
	assert.Equal(t, int64(1), dayKey(time.Unix(secondsPerDay, 0)))
	assert.Equal(t, int64(-1), dayKey(time.Unix(-1, 0)))
	assert.Equal(t, int64(-1), dayKey(time.Unix(-secondsPerDay, 0)))
	assert.Equal(t, int64(-2), dayKey(time.Unix(-secondsPerDay-1, 0)))
}
