package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/pgavlin/starenv"
	"github.com/pgavlin/starenv/internal/config"
	starlark_os "github.com/pgavlin/starenv/lib/os"
	starlark_sh "github.com/pgavlin/starenv/lib/sh"
	starlark_time "github.com/pgavlin/starenv/lib/time"
	"github.com/pgavlin/starenv/tz"
	starlark_json "github.com/pgavlin/starlark-go/lib/json"
	"github.com/pgavlin/starlark-go/repl"
	"github.com/pgavlin/starlark-go/starlark"
)

type workspace struct {
	configFile string
	envFiles   []string
	pid        int32
	timeZone   string
	maxSlots   int
	verbose    bool

	config   *config.Config
	renderer renderer
}

// init loads the workspace configuration. Flags take precedence over the configuration file.
func (w *workspace) init() error {
	switch {
	case w.configFile != "":
		c, err := config.LoadConfigFile(w.configFile)
		if err != nil {
			return err
		}
		w.config = c
	default:
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		c, path, err := config.FindConfigFile(wd)
		switch {
		case err == nil:
			w.config, w.configFile = c, path
		case errors.Is(err, fs.ErrNotExist):
			w.config = &config.Config{}
		default:
			return err
		}
	}

	if len(w.envFiles) == 0 {
		w.envFiles = w.config.EnvFiles
	}
	if w.pid == 0 {
		w.pid = w.config.PID
	}
	if w.timeZone == "" {
		w.timeZone = w.config.TimeZone
	}
	if w.maxSlots == 0 {
		w.maxSlots = w.config.MaxSlots
	}

	w.renderer = newLineRenderer(os.Stdout, os.Stderr, w.verbose)
	return nil
}

func (w *workspace) source() (starenv.Source, error) {
	base := starenv.Source(starenv.ProcessSource)
	if w.pid != 0 {
		s, err := starenv.PIDSource(w.pid)
		if err != nil {
			return nil, err
		}
		base = s
	}

	if len(w.envFiles) == 0 {
		return base, nil
	}
	files, err := starenv.DotenvSource(w.envFiles...)
	if err != nil {
		return nil, err
	}
	return starenv.OverlaySource{files, base}, nil
}

// environ builds a fresh environment map and applies the configured assignments.
func (w *workspace) environ() (*starenv.Map, error) {
	source, err := w.source()
	if err != nil {
		return nil, err
	}

	m, err := starenv.Build(source, &starenv.BuildOptions{
		TimeZone: tz.Default,
		Events:   w.renderer,
		MaxSlots: w.maxSlots,
	})
	if err != nil {
		return nil, fmt.Errorf("building environment: %w", err)
	}

	for _, name := range slices.Sorted(maps.Keys(w.config.Set)) {
		if err := m.Set(name, starlark.String(w.config.Set[name])); err != nil {
			return nil, err
		}
	}
	if w.timeZone != "" {
		if err := m.Set(starenv.TimeZoneVariable, starlark.String(w.timeZone)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (w *workspace) execOptions(m *starenv.Map) *starenv.ExecOptions {
	return &starenv.ExecOptions{
		Map:    m,
		Events: w.renderer,
		Builtins: starlark.StringDict{
			"json": starlark_json.Module,
			"os":   starlark_os.Module,
			"sh":   starlark_sh.Module,
			"time": starlark_time.Module,
		},
	}
}

func (w *workspace) run(ctx context.Context, path string) error {
	m, err := w.environ()
	if err != nil {
		return err
	}
	_, err = starenv.Exec(ctx, path, nil, w.execOptions(m))
	w.renderer.Close()
	return err
}

func (w *workspace) repl() error {
	m, err := w.environ()
	if err != nil {
		return err
	}
	thread, globals, err := starenv.NewThread("<stdin>", w.execOptions(m))
	if err != nil {
		return err
	}

	repl.REPL(thread, globals)
	return nil
}
