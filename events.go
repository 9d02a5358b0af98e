package starenv

import "github.com/pgavlin/starlark-go/starlark"

// Events allows callers to observe environment and script events.
type Events interface {
	// Print logs a line of output printed by a script.
	Print(line string)

	// VariableMaterialized is called when a variable's value is first read from its source.
	VariableMaterialized(name string)
	// VariableAssigned is called when a variable is written.
	VariableAssigned(name string)
	// TimeZoneAssigned is called when TZ is written. applied is true if the process time zone changed.
	TimeZoneAssigned(value starlark.Value, applied bool)
}

type discardEventsT int

// DiscardEvents is an implementation of Events that discards all events.
var DiscardEvents = discardEventsT(0)

func (discardEventsT) Print(line string)                                   {}
func (discardEventsT) VariableMaterialized(name string)                    {}
func (discardEventsT) VariableAssigned(name string)                        {}
func (discardEventsT) TimeZoneAssigned(value starlark.Value, applied bool) {}
