package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	fxs "github.com/pgavlin/fx/v2/slices"
	"github.com/pgavlin/starenv"
	"github.com/pgavlin/starenv/cmd/starenv/internal/term"
	"github.com/pgavlin/starenv/util"
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"
)

var (
	dumpJSON bool
	dumpAll  bool
)

type dumpEntry struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

var dumpCmd = &cobra.Command{
	Use:   "dump [PATTERN...]",
	Short: "Print the environment",
	Long: `Print the environment's variables in enumeration order: numeric names
in ascending order followed by all other names in the order they were added.

If patterns are given, only variables whose names match at least one pattern
are printed. In a pattern, '*' matches any run of characters and '?' matches
any single character.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		re, err := util.CompileNamePatterns(args)
		if err != nil {
			return err
		}

		m, err := work.environ()
		if err != nil {
			return err
		}

		names := m.Names()
		if dumpAll && !slices.Contains(names, starenv.TimeZoneVariable) {
			names = append(names, starenv.TimeZoneVariable)
		}
		if re != nil {
			names = slices.Collect(fxs.Filter(names, re.MatchString))
		}

		entries := make([]dumpEntry, 0, len(names))
		for _, name := range names {
			entry := dumpEntry{Name: name}
			if v, ok := m.Lookup(name); ok && v != starlark.None {
				s := starenv.ValueString(v)
				entry.Value = &s
			}
			entries = append(entries, entry)
		}

		if dumpJSON {
			return sonnet.NewEncoder(cmd.OutOrStdout()).Encode(entries)
		}

		for _, e := range entries {
			line := e.Name
			if e.Value != nil {
				line += "=" + *e.Value
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Truncate(line, termWidth))
		}
		if work.verbose {
			fmt.Fprintf(os.Stderr, "%v variables, %v read from the source\n", humanize.Comma(int64(len(entries))), humanize.Comma(int64(m.Materialized())))
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "print the environment as JSON")
	dumpCmd.Flags().BoolVarP(&dumpAll, "all", "a", false, "include variables that are not enumerable")
}
