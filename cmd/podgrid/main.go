// PodGrid: a terminal podcast catalog browser.
//
// Fetches the show catalog from the podcast API once at startup, then
// supports searching, sorting, genre filtering and paging entirely
// client-side.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/podgrid/podgrid/internal/catalog"
	"github.com/podgrid/podgrid/internal/config"
	"github.com/podgrid/podgrid/internal/tui"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Parse command line flags
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version and exit")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	// Show version
	if *showVersion {
		fmt.Printf("PodGrid version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		// Force exit after timeout
		time.AfterFunc(10*time.Second, func() {
			slog.Error("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	// Run the application
	if err := run(ctx, *configPath, *debugMode); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, debugMode bool) error {
	// Load configuration
	cfg, cfgPath, err := config.Load(configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	// Log to a file when configured. The terminal belongs to the TUI, so
	// stderr is only used when no log file is set.
	var logHandler slog.Handler
	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()

		logHandler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: logLevel,
		})
	} else {
		logHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})
	}

	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	slog.Info("PodGrid starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	// The API client is the app's only data source
	client := catalog.NewClient(cfg.API)

	// Set version info for TUI
	tui.Version = Version
	tui.BuildTime = BuildTime

	// Run TUI
	slog.Info("starting TUI",
		"base_url", cfg.API.BaseURL,
		"session_id", client.SessionID(),
	)

	if err := tui.Run(ctx, client, cfg); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("PodGrid shutdown complete")
	return nil
}
