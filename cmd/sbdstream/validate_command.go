package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sbdstream/internal/preflight"
	"sbdstream/internal/schedule"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schedule.csv>",
		Short: "Check a schedule file without starting a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			store := schedule.NewFileStore(args[0])
			exists, err := store.Exists()
			if err != nil {
				return fmt.Errorf("stat schedule file: %w", err)
			}
			if !exists {
				return fmt.Errorf("schedule file %s does not exist", args[0])
			}

			events, err := store.Load()
			if err != nil {
				return err
			}

			scheduled := 0
			for _, event := range events {
				if event.Occurrence.IsScheduled() {
					scheduled++
				}
			}
			fmt.Fprintf(out, "%s: %d events (%d scheduled, %d unscheduled)\n",
				args[0], len(events), scheduled, len(events)-scheduled)

			missing := 0
			for _, result := range preflight.CheckVideoPaths(events) {
				if result.Passed {
					continue
				}
				missing++
				fmt.Fprintf(out, "warning: %s: %s\n", result.Name, result.Detail)
			}
			if missing == 0 {
				fmt.Fprintln(out, "all video paths resolve")
			}
			return nil
		},
	}
}
