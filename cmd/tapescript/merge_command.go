package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tapescript/internal/history"
	"tapescript/internal/logging"
	"tapescript/internal/merge"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var (
		output   string
		noDelete bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "merge <pattern>...",
		Short: "Merge transcript segments in chronological order",
		Long: `Merge expands each pattern, orders the matched segments by their embedded
date and start time, concatenates them, and writes the result atomically.
Consumed segments are deleted afterwards unless --no-delete is given. The
destination is inferred from the segments' day directory or embedded dates
when --output is not supplied.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := merge.Execute(merge.Request{
				Patterns:    args,
				Output:      output,
				KeepSources: noDelete,
			})
			if err != nil {
				return err
			}

			ctx.loggerValue().Info("segments merged",
				logging.String("component", "merge"),
				logging.Int("sources", len(outcome.Sources)),
				logging.String("output", outcome.OutputPath),
				logging.Bool("sources_deleted", !noDelete),
			)

			ctx.recordRun(cmd.Context(), history.CommandMerge, outcome.OutputPath, outcome.Sources, false)

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"output_path":     outcome.OutputPath,
					"sources":         outcome.Sources,
					"sources_deleted": !noDelete,
				})
			}

			rows := make([][]string, 0, len(outcome.Sources))
			for idx, source := range outcome.Sources {
				rows = append(rows, []string{strconv.Itoa(idx + 1), source})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"#", "Merged Segment"}, rows))
			fmt.Fprintf(out, "Merged %d segment(s) into %s\n", len(outcome.Sources), outcome.OutputPath)
			if noDelete {
				fmt.Fprintln(out, "Sources were preserved (--no-delete)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Explicit output file overriding the inferred destination")
	cmd.Flags().BoolVar(&noDelete, "no-delete", false, "Preserve the original segments after merging")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the outcome as JSON")

	return cmd
}
