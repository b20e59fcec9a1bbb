// Package cli provides common initialization shared by the expense-tracker
// and expense-worker binaries.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"expensetracker/internal/backend"
	"expensetracker/internal/config"
	applog "expensetracker/internal/log"
)

// SetupLogger initializes structured logging at the given level and makes
// it the default logger.
func SetupLogger(level string) *slog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(level),
		Component: applog.ComponentApp,
		Output:    os.Stdout,
	})
	applog.SetDefault(logger)
	return logger.Logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed",
			applog.FieldComponent, applog.ComponentCLI, applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitBackend builds the configured store and service.
// Exits the process on failure.
func InitBackend(ctx context.Context, logger *slog.Logger, cfg *config.Config) *backend.BackendResult {
	backendConfig, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration",
			applog.FieldComponent, applog.ComponentCLI, applog.FieldError, err)
		os.Exit(1)
	}

	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendConfig)
	if err != nil {
		logger.Error("Failed to initialize backend",
			applog.FieldComponent, applog.ComponentCLI, applog.FieldError, err, "backend", backendConfig.Type)
		os.Exit(1)
	}
	return result
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM. Only a
// received signal is logged; calling the returned cancel is silent.
func SignalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	return notifyContext(context.Background(), logger, syscall.SIGINT, syscall.SIGTERM)
}

// notifyContext is signal.NotifyContext with a log line for the signal that
// ended it. The returned cancel waits for the watcher goroutine to exit.
func notifyContext(parent context.Context, logger *slog.Logger, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case sig := <-ch:
			logger.Info("Shutdown requested",
				applog.FieldComponent, applog.ComponentCLI,
				applog.FieldOperation, applog.OpShutdown,
				"signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(ch)
		cancel()
		<-done
	}
}
