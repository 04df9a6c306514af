package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aretw0/spotlight"
	"github.com/aretw0/spotlight/internal/cli"
	"github.com/aretw0/spotlight/pkg/adapters/file"
	"github.com/aretw0/spotlight/pkg/adapters/mcp"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the tours and per-profile tour progress as MCP tools, so AI agents can
inspect tours, check whether a user would see one and reset progress.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

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

		srv := mcp.NewServer(loader, func(profile string) (ports.SettingsStore, error) {
			return stores.Open(profile)
		}, strings.TrimSpace(spotlight.Version), mcp.WithLogger(logger))

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("starting spotlight MCP server (stdio)", "tours", cfg.ToursDir, "storage", cfg.Storage.Backend)
			return srv.ServeStdio()
		case "sse":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := fmt.Sprintf(":%d", port)
			err := srv.ServeSSE(ctx, addr, fmt.Sprintf("http://localhost:%d", port))
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("MCP server failed: %w", err)
			}
			logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport %q (supported: stdio, sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
