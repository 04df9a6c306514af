package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aretw0/spotlight"
	"github.com/aretw0/spotlight/internal/cli"
	"github.com/aretw0/spotlight/pkg/adapters/file"
	httpAdapter "github.com/aretw0/spotlight/pkg/adapters/http"
	"github.com/aretw0/spotlight/pkg/observability"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves tour definitions, per-profile tour progress and tooltip placement as a JSON API for browser hosts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		logger, err := cli.NewLogger(cfg)
		if err != nil {
			return err
		}

		loader := file.NewLoader(cfg.ToursDir)
		if _, err := loader.ListTours(); err != nil {
			return fmt.Errorf("error loading tours: %w", err)
		}

		stores, err := cli.NewStores(cfg.Storage)
		if err != nil {
			return err
		}
		defer stores.Close()

		opts := []httpAdapter.Option{
			httpAdapter.WithVersion(strings.TrimSpace(spotlight.Version)),
			httpAdapter.WithLogger(logger),
		}
		hooks := observability.LogHooks(logger)
		if cfg.Server.Metrics {
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics := observability.NewMetrics(reg)
			hooks = observability.Chain(metrics.Hooks(), hooks)
			opts = append(opts, httpAdapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
		}
		opts = append(opts, httpAdapter.WithLifecycleHooks(hooks))

		handler := httpAdapter.NewHandler(loader, func(profile string) (ports.SettingsStore, error) {
			return stores.Open(profile)
		}, opts...)

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting spotlight server", "addr", srv.Addr, "tours", cfg.ToursDir, "storage", cfg.Storage.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("spotlight server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (overrides server.addr)")
}
