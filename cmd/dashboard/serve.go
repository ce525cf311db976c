package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ougirez/energy-dashboard/internal/api"
	"github.com/ougirez/energy-dashboard/internal/pkg/logger"
	"github.com/ougirez/energy-dashboard/internal/pkg/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			svc, err := api.NewAPIService(cfg, metrics.New())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, egCtx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logger.Infof(egCtx, "listening on %s, energy backend %s", cfg.ListenAddr, cfg.APIURL)
				return svc.Serve(cfg.ListenAddr)
			})
			eg.Go(func() error {
				<-egCtx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				logger.Infof(shutdownCtx, "shutting down")
				return svc.Shutdown(shutdownCtx)
			})

			return eg.Wait()
		},
	}

	cmd.Flags().StringP("listen", "l", "", "listen address, e.g. :8080")
	return cmd
}
