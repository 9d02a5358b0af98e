package sh

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pgavlin/starenv"
	starlark_os "github.com/pgavlin/starenv/lib/os"
	"github.com/pgavlin/starenv/util"
	"github.com/pgavlin/starlark-go/starlark"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// starlark
//
//	def exec(cmd, cwd=None, env=None, try_=None):
//	    """
//	    Run a shell command. The command runs with the environment of the
//	    running script plus any variables in env. If the command fails, the
//	    calling script will abort unless `try_` is set to True, in which case
//	    the error is returned.
//	    """
//
//starlark:builtin factory=NewExec,function=Exec
func execf(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	cmd string,
	cwd string,
	envV starlark.IterableMapping,
	try bool,
) (starlark.Value, error) {
	file, options, err := command(thread, fn, cmd, cwd, envV)
	if err != nil {
		return nil, err
	}

	stdout, stderr := util.Stdio(thread)
	options = append(options, interp.StdIO(nil, stdout, stderr))

	if err := exec(util.GetContext(thread), file, options); err != nil {
		if try {
			return starlark.String(err.Error()), nil
		}
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return starlark.None, nil
}

// starlark
//
//	def output(cmd, cwd=None, env=None, try_=None):
//	    """
//	    Run a shell command and return its standard output. If `try_` is
//	    truthy, output returns (stdout, None) on success and (None, error)
//	    on failure.
//	    """
//
//starlark:builtin factory=NewOutput,function=Output
func output(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	cmd string,
	cwd string,
	envV starlark.IterableMapping,
	try bool,
) (starlark.Value, error) {
	file, options, err := command(thread, fn, cmd, cwd, envV)
	if err != nil {
		return nil, err
	}

	var stdout strings.Builder
	_, stderr := util.Stdio(thread)
	if try {
		stderr = io.Discard
	}
	options = append(options, interp.StdIO(nil, &stdout, stderr))

	if err := exec(util.GetContext(thread), file, options); err != nil {
		if try {
			return starlark.Tuple{starlark.None, starlark.String(err.Error())}, nil
		}
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}

	out := starlark.String(stdout.String())
	if try {
		return starlark.Tuple{out, starlark.None}, nil
	}
	return out, nil
}

// starlark
//
//	def expand(word):
//	    """
//	    Performs shell parameter expansion of word ($NAME, ${NAME:-default},
//	    etc.) using the environment of the running script. Command
//	    substitution is not permitted.
//	    """
//
//starlark:builtin factory=NewExpand,function=Expand
func expandf(thread *starlark.Thread, fn *starlark.Builtin, word string) (starlark.Value, error) {
	m, err := starlark_os.Current(thread)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	s, err := starenv.Expand(m, word)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return starlark.String(s), nil
}

func command(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	cmd string,
	cwd string,
	envV starlark.IterableMapping,
) (*syntax.File, []interp.RunnerOption, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(cmd), "")
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}

	if cwd == "" {
		cwd = util.Getwd(thread)
	}

	pairs, err := starlark_os.Pairs(thread, envV)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}

	options := []interp.RunnerOption{
		interp.Dir(cwd),
		interp.Env(expand.ListEnviron(pairs...)),
	}
	return file, options, nil
}

func exec(ctx context.Context, file *syntax.File, options []interp.RunnerOption) error {
	runner, err := interp.New(options...)
	if err != nil {
		return err
	}
	return runner.Run(ctx, file)
}
