package main

import (
	"fmt"

	"github.com/pgavlin/starenv"
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get NAME...",
	Short: "Print the values of environment variables",
	Long: `Print the values of environment variables, one per line.

Variables that are not present are printed as empty lines. The command fails
if any named variable is missing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := work.environ()
		if err != nil {
			return err
		}

		var missing []string
		for _, name := range args {
			v, ok := m.Lookup(name)
			if !ok || v == starlark.None {
				missing = append(missing, name)
				fmt.Fprintln(cmd.OutOrStdout())
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), starenv.ValueString(v))
		}
		if len(missing) != 0 {
			return fmt.Errorf("not set: %v", missing)
		}
		return nil
	},
}
