package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tapescript/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past update and merge runs",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if cfg != nil && !cfg.History.Enabled {
				return fmt.Errorf("run history is disabled; enable it in the [history] config section")
			}

			return ctx.withHistory(func(store *history.Store) error {
				records, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, records)
				}

				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						strconv.FormatInt(record.ID, 10),
						string(record.Command),
						record.CreatedAt.Local().Format("2006-01-02 15:04:05"),
						strconv.Itoa(len(record.Sources)),
						record.OutputPath,
						yesNo(record.OutOfOrder),
					})
				}
				headers := []string{"ID", "Command", "When", "Sources", "Output", "Out of Order"}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit records as JSON")

	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				noun := "runs"
				if removed == 1 {
					noun = "run"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d %s from history\n", removed, noun)
				return nil
			})
		},
	}
}
