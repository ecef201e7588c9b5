package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inference-gateway/voice-scheduling-agent/config"
	"github.com/inference-gateway/voice-scheduling-agent/health"
	"github.com/inference-gateway/voice-scheduling-agent/internal/logging"
	"github.com/inference-gateway/voice-scheduling-agent/provider"
	"github.com/inference-gateway/voice-scheduling-agent/resolver"
	"github.com/inference-gateway/voice-scheduling-agent/server"
	"github.com/inference-gateway/voice-scheduling-agent/skills"
	"github.com/inference-gateway/voice-scheduling-agent/webhook"
)

const shutdownTimeout = 15 * time.Second

var (
	// Version information - will be set by build flags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"

	// Command line flags
	showVersion = flag.Bool("version", false, "show version information and exit")
	showHelp    = flag.Bool("help", false, "show help information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("voice-scheduling-agent\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Build Date: %s\n", date)
		os.Exit(0)
	}

	if *showHelp {
		fmt.Printf("voice-scheduling-agent - books meetings on Cal.com or Google Calendar from voice agent tool calls\n\n")
		fmt.Printf("Usage:\n")
		fmt.Printf("  -help                         Show help information and exit\n")
		fmt.Printf("  -version                      Show version information and exit\n")
		fmt.Printf("\nConfiguration is managed through environment variables.\n")
		fmt.Printf("Set CAL_API_KEY (+ CAL_EVENT_TYPE_ID or CAL_USERNAME/CAL_EVENT_TYPE_SLUG) for Cal.com,\n")
		fmt.Printf("or GOOGLE_CLIENT_EMAIL + GOOGLE_PRIVATE_KEY, GOOGLE_CREDENTIALS_JSON or\n")
		fmt.Printf("GOOGLE_APPLICATION_CREDENTIALS for Google Calendar.\n")
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting voice-scheduling-agent",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("buildDate", date),
		zap.String("environment", cfg.App.Environment),
		zap.Bool("debug", cfg.IsDebugEnabled()))

	gin.SetMode(cfg.Server.Mode)

	tlsConfig, err := cfg.GetTLSConfig()
	if err != nil {
		return fmt.Errorf("failed to get TLS config: %w", err)
	}

	capability, resolveErr := resolver.Resolve(cfg)
	if resolveErr == nil {
		logger.Info("calendar provider resolved", capability.LogFields()...)
	}

	// Token sources outlive requests, so they are bound to the process context
	bookingProvider := provider.New(context.Background(), capability, resolveErr, cfg, logger)

	registry := skills.NewRegistry(logger, bookingProvider, cfg.App.ProviderTimeout)
	hooks := webhook.NewHandler(registry, logger)
	reporter := health.NewReporter(cfg, logger)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      server.NewRouter(cfg, logger, hooks, reporter),
		TLSConfig:    tlsConfig,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if cfg.Server.EnableTLS {
			logger.Info("starting HTTPS server",
				zap.String("address", srv.Addr),
				zap.String("certPath", cfg.TLS.CertPath),
				zap.String("keyPath", cfg.TLS.KeyPath))
			errCh <- srv.ListenAndServeTLS(cfg.TLS.CertPath, cfg.TLS.KeyPath)
			return
		}
		logger.Info("starting HTTP server",
			zap.String("address", srv.Addr),
			zap.String("baseURL", cfg.GetBaseURL()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
