//go:generate go run github.com/pgavlin/starenv/cmd/starenv-gen-builtins . builtins.go ../../docs/modules

package os

import (
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/pgavlin/starlark-go/starlarkstruct"
)

// starlark
//
//	def os():
//	    """
//	    The os module provides access to the environment of the running
//	    script and runs commands within that environment.
//	    """
//
//	    @function("environ")
//	    def environ():
//	        pass
//
//	    @function("getenv")
//	    def getenv():
//	        pass
//
//	    @function("setenv")
//	    def setenv():
//	        pass
//
//	    @function("getcwd")
//	    def getcwd():
//	        pass
//
//	    @function("exists")
//	    def exists():
//	        pass
//
//	    @function("lookPath")
//	    def look_path():
//	        pass
//
//	    @function("execf")
//	    def exec():
//	        pass
//
//	    @function("output")
//	    def output():
//	        pass
//
//starlark:module
var Module = &starlarkstruct.Module{
	Name: "os",
	Members: starlark.StringDict{
		"environ":   NewEnviron(),
		"getenv":    NewGetenv(),
		"setenv":    NewSetenv(),
		"getcwd":    NewGetcwd(),
		"exists":    NewExists(),
		"look_path": NewLookPath(),
		"exec":      NewExec(),
		"output":    NewOutput(),
	},
}
