package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pgavlin/starenv/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		if _, path, err := config.FindConfigFile(wd); err == nil {
			return fmt.Errorf("%v already exists", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		return config.WriteConfigFile(config.FileNames[0], &config.Config{
			TimeZone: work.timeZone,
			EnvFiles: work.envFiles,
			PID:      work.pid,
			MaxSlots: work.maxSlots,
		})
	},
}
