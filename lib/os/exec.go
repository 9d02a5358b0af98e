package os

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pgavlin/starenv/util"
	"github.com/pgavlin/starlark-go/starlark"
)

// starlark
//
//	def look_path(file):
//	    """
//	    Search for an executable named file in the directories named by
//	    the PATH environment variable of the running script. If file
//	    contains a slash, it is tried directly and PATH is not consulted.
//
//	    :param file: the name of the executable to find
//
//	    :returns: the absolute path to file if found or None if not found.
//	    """
//
//starlark:builtin factory=NewLookPath,function=LookPath
func lookPath(thread *starlark.Thread, fn *starlark.Builtin, file string) (starlark.Value, error) {
	if strings.ContainsRune(file, '/') {
		path, err := exec.LookPath(file)
		if err != nil {
			return starlark.None, nil
		}
		return starlark.String(path), nil
	}

	m, err := Current(thread)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	path, ok := m.Lookup("PATH")
	if !ok || path == starlark.None {
		return starlark.None, nil
	}
	dirs, ok := starlark.AsString(path)
	if !ok {
		dirs = path.String()
	}

	for _, dir := range filepath.SplitList(dirs) {
		if p, err := exec.LookPath(filepath.Join(dir, file)); err == nil {
			return starlark.String(p), nil
		}
	}
	return starlark.None, nil
}

// starlark
//
//	def exec(command, cwd=None, env=None, try_=None):
//	    """
//	    Run an executable. The executable's environment is the environment of
//	    the running script (see environ) plus any variables in env. If the
//	    process fails, the calling script will abort unless `try_` is set to
//	    True, in which case the contents of standard error will be returned.
//
//	    :param command: a list of strings indicating the executable to run
//	                    and its arguments (e.g. `["go", "env"]`).
//	    :param cwd: the working directory for the command. Defaults to the
//	                script's directory.
//	    :param env: any environment variables to set when running the command.
//	    :param `try_`: when True, the calling script will not be aborted if
//	                 the process fails.
//	    """
//
//starlark:builtin factory=NewExec,function=Exec
func execf(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	argv util.StringList,
	cwd string,
	envV starlark.IterableMapping,
	try bool,
) (starlark.Value, error) {
	cmd, err := command(thread, fn, argv, cwd, envV)
	if err != nil {
		return nil, err
	}

	var stderr strings.Builder
	stdout, errw := util.Stdio(thread)
	cmd.Stdout = stdout
	if try {
		cmd.Stderr = &stderr
	} else {
		cmd.Stderr = errw
	}

	if err = cmd.Run(); err != nil {
		if try {
			return starlark.String(stderr.String()), nil
		}
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return starlark.None, nil
}

// starlark
//
//	def output(command, cwd=None, env=None, try_=None):
//	    """
//	    Run an executable and return its output. The executable's environment
//	    is that of exec.
//
//	    :returns: the contents of standard output if `try_` is not truthy and the
//	              process succeeds. If `try_` is truthy, output returns
//	              (stdout, True) if the process succeeds and (stderr, False)
//	              if the process fails.
//	    """
//
//starlark:builtin factory=NewOutput,function=Output
func output(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	argv util.StringList,
	cwd string,
	envV starlark.IterableMapping,
	try bool,
) (starlark.Value, error) {
	cmd, err := command(thread, fn, argv, cwd, envV)
	if err != nil {
		return nil, err
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	if try {
		cmd.Stderr = &stderr
	} else {
		_, cmd.Stderr = util.Stdio(thread)
	}

	if err = cmd.Run(); err != nil {
		if try {
			return starlark.Tuple{starlark.String(stderr.String()), starlark.False}, nil
		}
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	if try {
		return starlark.Tuple{starlark.String(stdout.String()), starlark.True}, nil
	}
	return starlark.String(stdout.String()), nil
}

func command(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	argv util.StringList,
	cwd string,
	envV starlark.IterableMapping,
) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%v: command must have at least one element", fn.Name())
	}

	if cwd == "" {
		cwd = util.Getwd(thread)
	}

	env, err := Pairs(thread, envV)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = cwd
	cmd.Env = env
	return cmd, nil
}

// Pairs returns the environment of the running script as NAME=value pairs, followed by the entries of extra.
func Pairs(thread *starlark.Thread, extra starlark.IterableMapping) ([]string, error) {
	m, err := Current(thread)
	if err != nil {
		return nil, err
	}

	env := m.Pairs()
	if extra != nil {
		for _, kvp := range extra.Items() {
			key, ok := starlark.AsString(kvp[0])
			if !ok {
				key = kvp[0].String()
			}
			value, ok := starlark.AsString(kvp[1])
			if !ok {
				value = kvp[1].String()
			}
			env = append(env, fmt.Sprintf("%v=%v", key, value))
		}
	}
	return env, nil
}
