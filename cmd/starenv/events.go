package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pgavlin/starenv"
	"github.com/pgavlin/starlark-go/starlark"
)

type renderer interface {
	io.Closer
	starenv.Events

	FileChanged(path string)
	ReloadFailed(err error)
}

// simple renderer
type lineRenderer struct {
	m       sync.Mutex
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

func newLineRenderer(stdout, stderr io.Writer, verbose bool) renderer {
	return &lineRenderer{stdout: stdout, stderr: stderr, verbose: verbose}
}

func (e *lineRenderer) Close() error {
	return nil
}

func (e *lineRenderer) Print(line string) {
	e.m.Lock()
	defer e.m.Unlock()

	fmt.Fprintln(e.stdout, line)
}

func (e *lineRenderer) VariableMaterialized(name string) {
	if e.verbose {
		e.printe(name, color.WhiteString("materialized"))
	}
}

func (e *lineRenderer) VariableAssigned(name string) {
	if e.verbose {
		e.printe(name, color.GreenString("assigned"))
	}
}

func (e *lineRenderer) TimeZoneAssigned(value starlark.Value, applied bool) {
	if !e.verbose {
		return
	}
	if applied {
		e.printe(starenv.TimeZoneVariable, color.GreenString("time zone set to %v", value))
	} else {
		e.printe(starenv.TimeZoneVariable, color.YellowString("%v stored; time zone unchanged", value))
	}
}

func (e *lineRenderer) FileChanged(path string) {
	e.printe(path, "changed")
}

func (e *lineRenderer) ReloadFailed(err error) {
	e.printe("reload", color.RedString("failed: %v", err))
}

func (e *lineRenderer) printe(subject, message string) {
	e.m.Lock()
	defer e.m.Unlock()

	fmt.Fprintf(e.stderr, "[%v] %v\n", subject, message)
}
