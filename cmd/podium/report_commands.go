package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"podium/internal/config"
	"podium/internal/reportstore"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect and manage stored delivery reports",
	}

	reportCmd.AddCommand(newReportListCommand(ctx))
	reportCmd.AddCommand(newReportShowCommand(ctx))
	reportCmd.AddCommand(newReportDeleteCommand(ctx))
	reportCmd.AddCommand(newReportClearCommand(ctx))
	reportCmd.AddCommand(newReportHealthCommand(ctx))

	return reportCmd
}

func newReportListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *reportstore.Store) error {
				records, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, buildReportListModels(records))
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No reports stored")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						record.UUID,
						record.Title,
						strconv.Itoa(record.WordsPerMinute),
						strconv.Itoa(record.Clarity),
						strconv.Itoa(record.Conciseness),
						strconv.Itoa(record.Confidence),
						record.CreatedAt.Local().Format(time.DateTime),
					})
				}
				out := renderTable(
					[]string{"ID", "Title", "WPM", "Clarity", "Conciseness", "Confidence", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of reports to list (0 lists all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the list as JSON")
	return cmd
}

func newReportShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *reportstore.Store) error {
				record, err := store.GetByUUID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if record == nil {
					return fmt.Errorf("no report with id %s", args[0])
				}
				report, err := record.Report()
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, report)
				}
				renderReport(cmd.OutOrStdout(), record.Title, record.DurationMinutes, report)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	return cmd
}

func newReportDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *reportstore.Store) error {
				deleted, err := store.Delete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("no report with id %s", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s\n", args[0])
				return nil
			})
		},
	}
}

func newReportClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *reportstore.Store) error {
				cleared, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d reports\n", cleared)
				return nil
			})
		},
	}
}

func newReportHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show report store diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *reportstore.Store) error {
				health, err := store.Health(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Database: %s\n", store.Path())
				fmt.Fprintf(out, "Reports: %d\n", health.Total)
				if health.Total > 0 {
					fmt.Fprintf(out, "Average clarity: %.1f\n", health.AverageClarity)
					fmt.Fprintf(out, "Average conciseness: %.1f\n", health.AverageConciseness)
					fmt.Fprintf(out, "Average confidence: %.1f\n", health.AverageConfidence)
				}
				return nil
			})
		},
	}
}
