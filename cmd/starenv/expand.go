package main

import (
	"fmt"
	"strings"

	"github.com/pgavlin/starenv"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand STRING...",
	Short: "Expand environment variable references",
	Long: `Expand $NAME and ${NAME} references in the given strings using the
environment. Multiple arguments are joined with spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := work.environ()
		if err != nil {
			return err
		}

		s, err := starenv.Expand(m, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}
