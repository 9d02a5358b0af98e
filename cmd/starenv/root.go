package main

import (
	"os"

	"github.com/pgavlin/starenv/cmd/starenv/internal/term"
	"github.com/pgavlin/starenv/util"
	"github.com/spf13/cobra"
)

var (
	work      = &workspace{}
	version   = "development"
	termWidth int
)

var rootCmd = &cobra.Command{
	Version:       version,
	Use:           "starenv",
	Short:         "starenv runs Starlark scripts against a lazily-loaded environment.",
	Long:          `Run Starlark scripts against a lazily-loaded view of a process environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		termWidth = term.Width(os.Stdout)

		if cmd.Use != "init" {
			return work.init()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&work.configFile, "config", "c", "", "the path to the configuration file")
	rootCmd.PersistentFlags().StringArrayVarP(&work.envFiles, "env-file", "e", nil, "a dotenv file to layer over the environment (may be repeated)")
	rootCmd.PersistentFlags().Int32Var(&work.pid, "pid", 0, "use the environment of the given process")
	rootCmd.PersistentFlags().StringVar(&work.timeZone, "tz", "", "assign the given time zone to TZ")
	rootCmd.PersistentFlags().IntVar(&work.maxSlots, "max-slots", 0, "limit the number of environment variables")
	rootCmd.PersistentFlags().BoolVarP(&work.verbose, "verbose", "V", false, "log variable materialization and assignment")

	util.Must(rootCmd.PersistentFlags().MarkHidden("max-slots"))

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(expandCmd)
}
