package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oakwood-commons/bpx/internal/config"
	"github.com/oakwood-commons/bpx/pkg/logger"
	"github.com/oakwood-commons/bpx/pkg/settings"
)

// resolveConfigPath returns explicit when set, otherwise the XDG config file
// ($XDG_CONFIG_HOME/bpx/config.yaml or ~/.config/bpx/config.yaml) if it exists.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidate := ""
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// loadConfig loads the config named by the run settings in ctx.
func loadConfig(ctx context.Context) (config.Config, error) {
	run := settings.FromContextOrDefault(ctx)
	cfg, err := config.Load(run.ConfigFile)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	logger.FromContext(ctx).V(1).Info("config loaded",
		"path", run.ConfigFile,
		"tokens", len(cfg.Tokens),
		"tables", len(cfg.Tables))
	return cfg, nil
}
