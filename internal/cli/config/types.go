// Package config provides configuration management for the shellboard CLI.
package config

import "time"

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Port            int           `koanf:"port"`
	AutoOpen        bool          `koanf:"auto_open"`
	Watch           bool          `koanf:"watch"`
	DataFile        string        `koanf:"data_file"`
	SessionSecret   string        `koanf:"session_secret"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	ThemeCookie     string        `koanf:"theme_cookie"`
	Dev             bool          `koanf:"dev"`
}

// NavItemConfig is one configured navigation entry.
type NavItemConfig struct {
	Label       string `koanf:"label"`
	Destination string `koanf:"destination"`
	Icon        string `koanf:"icon"`
}

// SiteConfig describes the application shown in the shell.
type SiteConfig struct {
	Name        string          `koanf:"name"`
	Title       string          `koanf:"title"`
	Description string          `koanf:"description"`
	Nav         []NavItemConfig `koanf:"nav"`
}

// Config holds all CLI configuration options.
type Config struct {
	Verbose bool       `koanf:"verbose"`
	UI      UIConfig   `koanf:"ui"`
	Site    SiteConfig `koanf:"site"`

	// ConfigFile is the file the config was read from, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultPort            = 8765
	DefaultShutdownTimeout = 5 * time.Second
	DefaultThemeCookie     = "shellboard_theme"
	DefaultSiteName        = "My App"
	DefaultSiteTitle       = "My App - Dashboard"
	DefaultSiteDescription = "A modern dashboard built with the Digiko Design System."
)

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Port:            DefaultPort,
			AutoOpen:        true,
			Watch:           true,
			ShutdownTimeout: DefaultShutdownTimeout,
			ThemeCookie:     DefaultThemeCookie,
		},
		Site: SiteConfig{
			Name:        DefaultSiteName,
			Title:       DefaultSiteTitle,
			Description: DefaultSiteDescription,
		},
	}
}
