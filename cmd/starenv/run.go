package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var runWatch bool

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a script",
	Long: `Run a script against the environment.

The script sees the environment as the predeclared value 'environ'. The os,
sh, time, and json modules are also predeclared.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		if runWatch {
			return work.watch(ctx, args[0])
		}
		return work.run(ctx, args[0])
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run the script when it or its env files change")
}
