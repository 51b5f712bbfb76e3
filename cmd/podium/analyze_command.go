package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"podium/internal/analysis"
	"podium/internal/config"
	"podium/internal/reportstore"
	"podium/internal/transcript"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var durationFlag float64
	var jsonOutput bool
	var save bool

	cmd := &cobra.Command{
		Use:   "analyze <transcript>",
		Short: "Analyze a transcript file and print a delivery report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("resolve transcript path: %w", err)
			}
			tr, err := transcript.Load(path)
			if err != nil {
				return err
			}
			if durationFlag > 0 {
				tr.DurationMinutes = durationFlag
			}

			engine := analysis.NewEngine(cfg.Lexicon())
			report := engine.Analyze(tr.Chunks, tr.DurationMinutes)
			if report == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Transcript contains no analyzable speech")
				return nil
			}

			if save {
				record, err := reportstore.NewRecord(tr, report)
				if err != nil {
					return err
				}
				if err := ctx.withStore(func(_ *config.Config, store *reportstore.Store) error {
					saved, err := store.Save(cmd.Context(), record)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Saved report %s\n", saved.UUID)
					return nil
				}); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			renderReport(cmd.OutOrStdout(), tr.Title, tr.DurationMinutes, report)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&durationFlag, "duration", "d", 0, "Override the speech duration in minutes")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the report to the report database")
	return cmd
}
