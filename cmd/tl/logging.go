package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tasklight/tasklight-go/internal/config"
)

// configureLogging sets the default slog logger. Precedence for the level:
// the --log-level flag, then TASKLIGHT_LOG_LEVEL, then the config file,
// then warn.
func configureLogging(flagLevel string) {
	raw := strings.TrimSpace(flagLevel)
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv(config.LogLevelEnvKey))
	}
	if raw == "" {
		if cfg, err := config.LoadGlobalConfig(); err == nil {
			raw = strings.TrimSpace(cfg.LogLevel)
		}
	}

	level, err := parseLogLevel(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; defaulting to %s\n", err, config.DefaultLogLevel)
		level = slog.LevelWarn
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", config.DefaultLogLevel:
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level %q", raw)
	}
}
