package os

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pgavlin/starenv"
	"github.com/pgavlin/starenv/util"
	"github.com/pgavlin/starlark-go/starlark"
)

// Current returns the environment bound to the thread. Threads without a bound environment get a map over the
// process environment, built on first use.
func Current(thread *starlark.Thread) (*starenv.Map, error) {
	if m, ok := starenv.CurrentMap(thread); ok {
		return m, nil
	}
	m, err := starenv.Build(starenv.ProcessSource, nil)
	if err != nil {
		return nil, err
	}
	starenv.SetMap(thread, m)
	return m, nil
}

// starlark
//
//	def environ():
//	    """
//	    Returns a mapping object whose keys and values are the environment
//	    variables of the running script. Values are read from the process
//	    environment on first access. Assigning to the mapping changes the
//	    environment seen by the script and by commands it runs.
//	    """
//
//starlark:builtin factory=NewEnviron,function=Environ
func environ(thread *starlark.Thread, fn *starlark.Builtin) (starlark.Value, error) {
	m, err := Current(thread)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return m, nil
}

// starlark
//
//	def getenv(name, default=None):
//	    """
//	    Returns the value of the named environment variable, or default if the
//	    variable is not set.
//	    """
//
//starlark:builtin factory=NewGetenv,function=Getenv
func getenv(thread *starlark.Thread, fn *starlark.Builtin, name string, default_ starlark.Value) (starlark.Value, error) {
	m, err := Current(thread)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	if v, ok := m.Lookup(name); ok && v != starlark.None {
		return v, nil
	}
	if default_ == nil {
		return starlark.None, nil
	}
	return default_, nil
}

// starlark
//
//	def setenv(name, value):
//	    """
//	    Sets the value of the named environment variable.
//	    """
//
//starlark:builtin factory=NewSetenv,function=Setenv
func setenv(thread *starlark.Thread, fn *starlark.Builtin, name, value string) (starlark.Value, error) {
	if name == "" {
		return nil, fmt.Errorf("%v: name must not be empty", fn.Name())
	}

	m, err := Current(thread)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	if err := m.Set(name, starlark.String(value)); err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return starlark.None, nil
}

// starlark
//
//	def getcwd():
//	    """
//	    Returns the working directory of the running script. This is the
//	    directory that contains the script's source file.
//	    """
//
//starlark:builtin factory=NewGetcwd,function=Getcwd
func getcwd(thread *starlark.Thread, fn *starlark.Builtin) (starlark.Value, error) {
	return starlark.String(util.Getwd(thread)), nil
}

// starlark
//
//	def exists(path):
//	    """
//	    Returns true if a file exists at the given path. Relative paths are
//	    resolved against the script's working directory.
//	    """
//
//starlark:builtin factory=NewExists,function=Exists
func exists(thread *starlark.Thread, fn *starlark.Builtin, path string) (starlark.Value, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(util.Getwd(thread), path)
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return starlark.True, nil
	case os.IsNotExist(err):
		return starlark.False, nil
	default:
		return nil, err
	}
}
