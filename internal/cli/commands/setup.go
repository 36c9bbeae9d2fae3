package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/shellboard/internal/cli/config"
	"github.com/leapstack-labs/shellboard/internal/nav"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Registry nav.Registry
}

// NewCommandContext loads the config and logger from the command context
// and builds the navigation registry from the site config.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig(cmd)
	reg, err := buildRegistry(cfg.Site)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Registry: reg,
	}, nil
}

// getConfig returns the configuration loaded by the root command, or the
// defaults when the command runs standalone.
func getConfig(cmd *cobra.Command) *config.Config {
	return config.FromContext(cmd.Context())
}

// buildRegistry builds and validates the navigation registry.
func buildRegistry(site config.SiteConfig) (nav.Registry, error) {
	reg := nav.FromConfig(site)
	if err := reg.Validate(); err != nil {
		return nav.Registry{}, fmt.Errorf("invalid site navigation: %w", err)
	}
	return reg, nil
}

// sessionSecret returns the configured secret, or a random one. A random
// secret means theme cookies do not survive a restart.
func sessionSecret(configured string, logger *slog.Logger) (string, error) {
	if configured != "" {
		return configured, nil
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	logger.Debug("no session secret configured; using a random one")
	return hex.EncodeToString(b), nil
}
