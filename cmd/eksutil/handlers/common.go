package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/eksutil/internal/config"
)

// GlobalOptions are the settings shared by every command.
type GlobalOptions struct {
	// ConfigPath is the YAML config file. Empty falls back to EKSUTIL_CONFIG.
	ConfigPath string
	// LogLevel overrides the configured log level when set.
	LogLevel string
}

var (
	loadConfig = config.Load

	// stdout receives command results, stderr receives logs and diagnostics.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// setup loads the configuration and returns a context carrying the logger.
func setup(ctx context.Context, opts GlobalOptions) (context.Context, *config.Config, error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if cfg.Timeouts == nil {
		cfg.Timeouts = config.LoadTimeouts()
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return logr.NewContext(ctx, logger.WithName("eksutil")), cfg, nil
}
