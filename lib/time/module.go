//go:generate go run github.com/pgavlin/starenv/cmd/starenv-gen-builtins . builtins.go ../../docs/modules

package time

import (
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/pgavlin/starlark-go/starlarkstruct"
)

// starlark
//
//	def time():
//	    """
//	    The time module reads the clock and formats times in the active time
//	    zone, which follows assignments to environ.TZ.
//	    """
//
//	    @function("now")
//	    def now():
//	        pass
//
//	    @function("zone")
//	    def zone():
//	        pass
//
//	    @function("format")
//	    def format():
//	        pass
//
//starlark:module
var Module = &starlarkstruct.Module{
	Name: "time",
	Members: starlark.StringDict{
		"now":    NewNow(),
		"zone":   NewZone(),
		"format": NewFormat(),
	},
}
