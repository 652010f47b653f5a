package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sbdstream/internal/console"
	"sbdstream/internal/schedule"
)

func newShowCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <schedule.csv>",
		Short: "Print the schedule as a table without starting a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := schedule.NewFileStore(args[0])
			events, err := store.Load()
			if err != nil {
				return err
			}

			fancy := !plain
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				fancy = fancy && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
			}

			fmt.Fprintln(cmd.OutOrStdout(), console.RenderSchedule(events, -1, videoExists, fancy))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Use plain table borders")
	return cmd
}

func videoExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
