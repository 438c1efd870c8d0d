package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tapescript/internal/history"
	"tapescript/internal/logging"
	"tapescript/internal/transcript"
	"tapescript/internal/update"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDir string
		flat      bool
		timeFlag  string
		dateFlag  string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "update <file>",
		Short: "Adjust relative timestamps in a transcript to absolute wall-clock times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := transcript.ParseClock(strings.TrimSpace(timeFlag))
			if err != nil {
				return err
			}
			date, err := transcript.ParseDate(strings.TrimSpace(dateFlag))
			if err != nil {
				return err
			}

			root := strings.TrimSpace(outputDir)
			if root == "" {
				root = ctx.configValue().Paths.OutputDir
			}

			outcome, err := update.Execute(update.Request{
				InputFile: args[0],
				OutputDir: root,
				Flat:      flat,
				Anchor:    transcript.Anchor(date, clock),
			})
			if err != nil {
				return err
			}

			logger := ctx.loggerValue()
			logger.Info("transcript updated",
				logging.String("component", "update"),
				logging.String("input", args[0]),
				logging.String("output", outcome.OutputPath),
				logging.Bool("out_of_order", outcome.OutOfOrder),
			)
			if outcome.OutOfOrder {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: timestamps in the input were not in chronological order")
			}

			ctx.recordRun(cmd.Context(), history.CommandUpdate, outcome.OutputPath, []string{args[0]}, outcome.OutOfOrder)

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"output_path":  outcome.OutputPath,
					"out_of_order": outcome.OutOfOrder,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated transcript written to %s\n", outcome.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Root directory for nested output (defaults to paths.output_dir)")
	cmd.Flags().BoolVar(&flat, "flat", false, "Write a single dated file into the current working directory")
	cmd.Flags().StringVar(&timeFlag, "time", "", "Wall-clock time the recording started (HH:MM:SS)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Calendar date the recording started (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the outcome as JSON")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
