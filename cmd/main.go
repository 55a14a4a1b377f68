package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tally/internal/audit"
	"tally/internal/configuration"
	"tally/internal/identifier"
	"tally/internal/processor"
	"tally/internal/score"
	"tally/internal/server"
	"tally/internal/store"
)

// prepareLogger configures the global logger using slog. Takes a string
// log level (e.g., "debug", "info", "warn", "error") and installs a
// JSON-formatted handler on os.Stdout. An unrecognized level falls back
// to Info.
func prepareLogger(level string) {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// openStore creates the receipt store selected by the configuration.
func openStore(config configuration.StorageConfig) (store.Store, error) {
	if config.Backend == configuration.StorageBackendBolt {
		return store.NewBoltStore(config.Path)
	}
	return store.NewMemoryStore(), nil
}

// On failures while loading configuration or initializing components the
// application exits with code 1.
func main() {
	configPath := flag.String("config", "/etc/tally/config.yaml", "configuration file")
	flag.Parse()

	// Optional .env next to the binary; environment overrides config values.
	godotenv.Load()

	config, err := configuration.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Unable to load configuration", "error", err)
		os.Exit(1)
	}
	prepareLogger(config.Logger.Level)

	appCtx, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer appCancel()

	receiptStore, err := openStore(config.Storage)
	if err != nil {
		slog.Error("Unable to open receipt store", "error", err)
		os.Exit(1)
	}

	var trail audit.Trail = audit.NopTrail{}
	if config.Audit.File != "" {
		trail = audit.NewJSONLTrail(config.Audit.File, config.Audit.Size, config.Audit.Amount)
	}

	proc := processor.NewProcessor(
		score.NewCalculator(),
		identifier.NewUUIDIssuer(),
		receiptStore,
		trail,
		config.Journal.Length,
	)

	srv := server.NewServer(config.Server.Address, proc)
	go srv.ListenAndServe()
	slog.Info("Server listening " + config.Server.Address)
	<-appCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*10)
	defer shutdownCancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("Server shutdown", "error", err)
	}
	slog.Info("Server stopped")

	trail.Close()
	if err := receiptStore.Close(); err != nil {
		slog.Error("Store close", "error", err)
	}
}
