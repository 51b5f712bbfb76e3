package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"podium/internal/config"
	"podium/internal/logging"
	"podium/internal/reportstore"
	"podium/internal/watchmode"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a drop directory and analyze transcripts as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *reportstore.Store) error {
				if dirFlag != "" {
					expanded, err := config.ExpandPath(dirFlag)
					if err != nil {
						return fmt.Errorf("resolve watch directory: %w", err)
					}
					cfg.Watch.Dir = expanded
				}

				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return fmt.Errorf("initialize logging: %w", err)
				}

				svc, err := watchmode.New(cfg, store, logger)
				if err != nil {
					return err
				}

				runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (ctrl-c to stop)\n", cfg.Watch.Dir)
				return svc.Run(runCtx)
			})
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Directory to watch (overrides the configured watch dir)")
	return cmd
}
