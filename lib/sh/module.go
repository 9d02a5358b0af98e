//go:generate go run github.com/pgavlin/starenv/cmd/starenv-gen-builtins . builtins.go ../../docs/modules

package sh

import (
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/pgavlin/starlark-go/starlarkstruct"
)

// starlark
//
//	def sh():
//	    """
//	    The sh module runs POSIX shell commands with an in-process
//	    interpreter. Commands see the environment of the running script.
//	    """
//
//	    @function("execf")
//	    def exec():
//	        pass
//
//	    @function("output")
//	    def output():
//	        pass
//
//	    @function("expandf")
//	    def expand():
//	        pass
//
//starlark:module
var Module = &starlarkstruct.Module{
	Name: "sh",
	Members: starlark.StringDict{
		"exec":   NewExec(),
		"output": NewOutput(),
		"expand": NewExpand(),
	},
}
