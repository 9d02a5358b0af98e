package time

import (
	"fmt"
	"time"

	"github.com/pgavlin/starenv"
	"github.com/pgavlin/starenv/tz"
	"github.com/pgavlin/starlark-go/starlark"
)

// SetService binds a time zone service to the thread. Threads without a bound service use the service of the
// thread's environment, if it is a *tz.Service, and tz.Default otherwise.
func SetService(thread *starlark.Thread, s *tz.Service) {
	thread.SetLocal("tz", s)
}

func service(thread *starlark.Thread) *tz.Service {
	if s, ok := thread.Local("tz").(*tz.Service); ok {
		return s
	}
	if m, ok := starenv.CurrentMap(thread); ok {
		if s, ok := m.TimeZone().(*tz.Service); ok {
			return s
		}
	}
	return tz.Default
}

// starlark
//
//	def now():
//	    """
//	    Returns the current time in seconds since the Unix epoch.
//	    """
//
//starlark:builtin factory=NewNow,function=Now
func now(thread *starlark.Thread, fn *starlark.Builtin) (starlark.Value, error) {
	return starlark.MakeInt64(time.Now().Unix()), nil
}

// starlark
//
//	def zone(seconds=None):
//	    """
//	    Returns the abbreviated name and the offset in seconds east of UTC of
//	    the active time zone at the given time (default: now). The active
//	    time zone follows assignments to environ.TZ.
//	    """
//
//starlark:builtin factory=NewZone,function=Zone
func zone(thread *starlark.Thread, fn *starlark.Builtin, seconds starlark.Value) (starlark.Value, error) {
	t, err := unixTime(fn, seconds)
	if err != nil {
		return nil, err
	}

	name, offset := service(thread).Offset(t)
	return starlark.Tuple{starlark.String(name), starlark.MakeInt(offset)}, nil
}

// starlark
//
//	def format(seconds=None, layout=None):
//	    """
//	    Formats the given time (default: now) in the active time zone using a
//	    Go time layout (default: RFC 3339).
//	    """
//
//starlark:builtin factory=NewFormat,function=Format
func format(thread *starlark.Thread, fn *starlark.Builtin, seconds starlark.Value, layout string) (starlark.Value, error) {
	t, err := unixTime(fn, seconds)
	if err != nil {
		return nil, err
	}
	if layout == "" {
		layout = time.RFC3339
	}
	return starlark.String(t.In(service(thread).Location()).Format(layout)), nil
}

func unixTime(fn *starlark.Builtin, seconds starlark.Value) (time.Time, error) {
	if seconds == nil || seconds == starlark.None {
		return time.Now(), nil
	}
	var s int64
	if err := starlark.AsInt(seconds, &s); err != nil {
		return time.Time{}, fmt.Errorf("%v: seconds: %w", fn.Name(), err)
	}
	return time.Unix(s, 0), nil
}
