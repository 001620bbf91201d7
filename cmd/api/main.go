package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brkuhgk/Nestara/internal/identity"
	"github.com/brkuhgk/Nestara/internal/rest"
	"github.com/brkuhgk/Nestara/internal/setup"
	"github.com/brkuhgk/Nestara/internal/worker/core"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// APILogDir specifies where API server log files are stored.
const APILogDir = "logs/api_logs"

// Server timeouts.
const (
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 10 * time.Second
	ShutdownTimeout = 30 * time.Second
)

func main() {
	cmd := &cli.Command{
		Name:  "api",
		Usage: "Start the Nestara REST API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address override",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runServer(ctx, c.String("addr"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runServer(ctx context.Context, addrOverride string) error {
	// Initialize application with required dependencies
	app, err := setup.InitializeApp(ctx, APILogDir)
	if err != nil {
		return err
	}
	defer app.Cleanup(ctx)

	provider := identity.New(app.Config.Common.Identity.JWTSecret, app.Config.Common.Identity.TokenExpiryMin)
	monitor := core.NewMonitor(app.StatusClient, app.Logger)

	// Create server
	handler, err := rest.NewServer(app.DB, provider, monitor, app.Logger)
	if err != nil {
		return err
	}

	addr := app.Config.Common.Server.Addr
	if addrOverride != "" {
		addr = addrOverride
	}

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("REST server started on %s", addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	app.Logger.Info("Shutting down REST server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	app.Logger.Info("Server gracefully stopped")

	return nil
}
