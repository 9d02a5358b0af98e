package main

import "github.com/spf13/cobra"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Launch the REPL",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return work.repl()
	},
}
