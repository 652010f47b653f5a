package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sbdstream/internal/config"
)

func newConfigCommand(configFlag *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(configFlag))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			if err := config.WriteSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigShowCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config file: %s\n", path)
			fmt.Fprintf(out, "paths.log_dir = %q\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "paths.lock_dir = %q\n", cfg.Paths.LockDir)
			fmt.Fprintf(out, "scheduler.tick_interval = %d\n", cfg.Scheduler.TickInterval)
			fmt.Fprintf(out, "notifications.ntfy_topic = %q\n", cfg.Notifications.NtfyTopic)
			fmt.Fprintf(out, "notifications.request_timeout = %d\n", cfg.Notifications.RequestTimeout)
			fmt.Fprintf(out, "logging.format = %q\n", cfg.Logging.Format)
			fmt.Fprintf(out, "logging.level = %q\n", cfg.Logging.Level)
			return nil
		},
	}
}
