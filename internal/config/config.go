package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// FileNames are the names of the configuration files that are searched for, in order.
var FileNames = []string{"starenv.toml", ".starenvrc"}

type Config struct {
	// TimeZone, if set, is assigned to TZ after the environment is built.
	TimeZone string `toml:"timezone,omitempty"`

	// EnvFiles are dotenv files layered over the base environment. Later files win.
	EnvFiles []string `toml:"env_files,omitempty"`

	// PID, if non-zero, selects another process's environment as the base environment.
	PID int32 `toml:"pid,omitempty"`

	// MaxSlots limits the number of variables in the environment. Zero means no limit.
	MaxSlots int `toml:"max_slots,omitempty"`

	// Set holds variables that are assigned after the environment is built.
	Set map[string]string `toml:"set,omitempty"`
}

// LoadConfigFile loads the configuration at path. Relative env file paths are resolved against the directory that
// contains the configuration file.
func LoadConfigFile(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := LoadConfigBytes(contents)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, p := range c.EnvFiles {
		if !filepath.IsAbs(p) {
			c.EnvFiles[i] = filepath.Join(dir, p)
		}
	}
	return c, nil
}

// FindConfigFile searches dir for a configuration file. It returns an error wrapping fs.ErrNotExist if no file is
// found.
func FindConfigFile(dir string) (*Config, string, error) {
	var err error
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		var c *Config
		if c, err = LoadConfigFile(path); err == nil {
			return c, path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}
	}
	return nil, "", err
}

func LoadConfigBytes(contents []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(contents, &c); err != nil {
		return nil, err
	}

	var errs []error
	if c.MaxSlots < 0 {
		errs = append(errs, fmt.Errorf("invalid max_slots %v", c.MaxSlots))
	}
	if c.PID < 0 {
		errs = append(errs, fmt.Errorf("invalid pid %v", c.PID))
	}
	for i, p := range c.EnvFiles {
		expanded, err := homedir.Expand(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid env file %q: %w", p, err))
			continue
		}
		c.EnvFiles[i] = expanded
	}
	for _, k := range slices.Sorted(maps.Keys(c.Set)) {
		if k == "" || strings.ContainsRune(k, '=') {
			errs = append(errs, fmt.Errorf("invalid variable name %q", k))
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}

	return &c, nil
}

func WriteConfigFile(path string, c *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	has := false
	print := func(format string, args ...any) {
		fmt.Fprintf(f, format, args...)
		has = true
	}
	printSection := func(format string, args ...any) {
		if has {
			fmt.Fprintln(f)
		}
		print(format, args...)
	}

	if c.TimeZone != "" {
		print("timezone = %v\n", encodeValue(c.TimeZone))
	}
	if c.PID != 0 {
		print("pid = %v\n", encodeValue(c.PID))
	}
	if c.MaxSlots != 0 {
		print("max_slots = %v\n", encodeValue(c.MaxSlots))
	}

	if len(c.EnvFiles) != 0 {
		printSection("env_files = %v\n", encodeValue(c.EnvFiles))
	}

	if len(c.Set) != 0 {
		printSection("[set]\n")
		for _, name := range slices.Sorted(maps.Keys(c.Set)) {
			key := name
			if strings.ContainsFunc(name, func(r rune) bool { return !isPlainRune(r) }) {
				key = encodeValue(name)
			}
			print("%v = %v\n", key, encodeValue(c.Set[name]))
		}
	}

	return nil
}

func encodeValue(v any) string {
	var b strings.Builder
	err := toml.NewEncoder(&b).SetTablesInline(true).Encode(v)
	if err != nil {
		return "<invalid>"
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func isPlainRune(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-'
}
