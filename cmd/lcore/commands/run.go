package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/agent"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/telemetry"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the continuous telemetry submission daemon",
		Long: `Run the continuous telemetry submission daemon.

An identity is created on first run and reused afterwards. Every interval
the agent reads the configured sensor, signs the reading, and posts it to
the attestor. SIGINT or SIGTERM stops the loop cleanly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			id, created, err := wire.Identities.LoadOrCreate()
			if err != nil {
				return err
			}
			if created {
				wire.Logger.Info("identity created", "did", id.DID().String(), "path", cfg.DeviceFile)
			}

			sensor, err := telemetry.Init(cfg.Sensor)
			if err != nil {
				return err
			}

			var metrics *agent.Metrics
			if cfg.MetricsAddr != "" {
				reg := prometheus.NewRegistry()
				metrics = agent.NewMetrics(reg)
				srv := &http.Server{
					Addr:              cfg.MetricsAddr,
					Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						wire.Logger.Error("metrics listener failed", "addr", cfg.MetricsAddr, "err", err.Error())
					}
				}()
				defer func() {
					shutCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
					defer cancel()
					_ = srv.Shutdown(shutCtx)
				}()
				wire.Logger.Info("metrics listening", "addr", cfg.MetricsAddr)
			}

			a := agent.New(agent.Config{
				Identity:  id,
				Sensor:    sensor,
				Transport: wire.Attestor,
				Interval:  cfg.Interval(),
				Logger:    wire.Logger,
				Metrics:   metrics,
			})

			err = a.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
