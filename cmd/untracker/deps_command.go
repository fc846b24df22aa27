package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"untracker/internal/deps"
)

func newDepsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := deps.CheckBinaries(deps.Requirements(format))

			rows := make([][]string, 0, len(statuses))
			missing := 0
			for i, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
					if !status.Optional {
						missing++
					} else {
						state += " (optional)"
					}
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					status.Name,
					status.Description,
					state,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "Tool", "Used for", "Status"}, rows))
			if missing > 0 {
				return fmt.Errorf("%d required dependencies missing", missing)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "vorbis", "Output format to check requirements for")
	return cmd
}
