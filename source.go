package starenv

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/v3/process"
)

// Source provides the names and values that back a Map.
type Source interface {
	// Names returns the names of all currently defined variables in enumeration order.
	Names() []string
	// Lookup returns the current value of the named variable and whether it is defined.
	Lookup(name string) (string, bool)
}

type processSourceT int

// ProcessSource is the environment of the current process.
var ProcessSource = processSourceT(0)

func (processSourceT) Names() []string {
	return pairNames(os.Environ())
}

func (processSourceT) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// PairsSource is a source backed by a list of NAME=value pairs. Later pairs win.
type PairsSource []string

func (s PairsSource) Names() []string {
	return pairNames(s)
}

func (s PairsSource) Lookup(name string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		kvp := s[i]
		if len(kvp) > len(name) && kvp[len(name)] == '=' && kvp[:len(name)] == name {
			return kvp[len(name)+1:], true
		}
	}
	return "", false
}

func pairNames(pairs []string) []string {
	names := make([]string, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for _, kvp := range pairs {
		eq := strings.IndexByte(kvp, '=')
		if eq == -1 {
			continue
		}
		// On Windows, per-drive working directories show up as "=C:=C:\...".
		if eq == 0 {
			eq = strings.IndexByte(kvp[1:], '=')
			if eq == -1 {
				continue
			}
			eq++
		}
		name := kvp[:eq]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// mapSource is a snapshot of name/value pairs with a fixed enumeration order.
type mapSource struct {
	names  []string
	values map[string]string
}

func (s *mapSource) Names() []string {
	return s.names
}

func (s *mapSource) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// DotenvSource reads the given dotenv files. When a name is defined by more than one file, the last file wins.
// Names are enumerated in sorted order, as dotenv files carry no meaningful ordering once merged.
func DotenvSource(paths ...string) (Source, error) {
	values, err := godotenv.Read(paths...)
	if err != nil {
		return nil, fmt.Errorf("reading env files: %w", err)
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)
	return &mapSource{names: names, values: values}, nil
}

// PIDSource captures the environment of the process with the given ID.
func PIDSource(pid int32) (Source, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return nil, fmt.Errorf("process %v: %w", pid, err)
	}
	env, err := p.Environ()
	if err != nil {
		return nil, fmt.Errorf("reading environment of process %v: %w", pid, err)
	}
	return PairsSource(env), nil
}

// OverlaySource layers sources on top of each other. Lookups are answered by the first source that defines a name;
// names are enumerated starting with the last (base) source.
type OverlaySource []Source

func (s OverlaySource) Names() []string {
	var names []string
	seen := map[string]bool{}
	for i := len(s) - 1; i >= 0; i-- {
		for _, name := range s[i].Names() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func (s OverlaySource) Lookup(name string) (string, bool) {
	for _, src := range s {
		if v, ok := src.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}
