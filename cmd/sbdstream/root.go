package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sbdstream/internal/config"
	"sbdstream/internal/runner"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "sbdstream <schedule.csv>",
		Short:         "Schedule and sequence videos for a livestream",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath := args[0]
			if _, err := os.Stat(csvPath); err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("schedule file %s does not exist", csvPath)
				}
				return fmt.Errorf("stat schedule file: %w", err)
			}

			cfg, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			return runner.Run(cmd.Context(), cfg, csvPath, runner.Options{})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newConfigCommand(&configFlag))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
