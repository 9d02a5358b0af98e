package starenv

import (
	"context"
	"path/filepath"

	"github.com/pgavlin/starenv/util"
	"github.com/pgavlin/starlark-go/starlark"
)

// ExecOptions control the execution of a script.
type ExecOptions struct {
	// Map is bound to the thread and predeclared as `environ`. If nil, a map over ProcessSource is built.
	Map *Map
	// Events receives print output. Defaults to the map's events.
	Events Events
	// Builtins are additional predeclared values, typically library modules.
	Builtins starlark.StringDict
}

// NewThread creates a Starlark thread and predeclared globals for running scripts against an environment map.
func NewThread(name string, options *ExecOptions) (*starlark.Thread, starlark.StringDict, error) {
	if options == nil {
		options = &ExecOptions{}
	}

	m := options.Map
	if m == nil {
		built, err := Build(ProcessSource, nil)
		if err != nil {
			return nil, nil, err
		}
		m = built
	}
	events := options.Events
	if events == nil {
		events = m.events
	}

	t := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			events.Print(msg)
		},
	}

	out := newLineWriter(events)
	util.SetStdio(t, out, out)
	SetMap(t, m)

	predeclared := starlark.StringDict{}
	for k, v := range options.Builtins {
		predeclared[k] = v
	}
	predeclared["environ"] = m

	return t, predeclared, nil
}

// Exec runs the script in the named file. If src is non-nil, it is used as the source of the script (see
// starlark.ExecFile). The script's globals are returned on success.
func Exec(ctx context.Context, filename string, src any, options *ExecOptions) (starlark.StringDict, error) {
	t, predeclared, err := NewThread(filename, options)
	if err != nil {
		return nil, err
	}
	if abs, err := filepath.Abs(filename); err == nil {
		util.Chdir(t, filepath.Dir(abs))
	}

	done := util.SetContext(ctx, t)
	defer done()

	stdout, _ := util.Stdio(t)
	if w, ok := stdout.(*lineWriter); ok {
		defer w.Flush()
	}

	return starlark.ExecFile(t, filename, src, predeclared)
}
