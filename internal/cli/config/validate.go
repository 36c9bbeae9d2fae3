package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if c.UI.Port < 0 || c.UI.Port > 65535 {
		errs = append(errs, fmt.Errorf("ui.port out of range: %d", c.UI.Port))
	}
	if c.UI.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("ui.shutdown_timeout must not be negative: %s", c.UI.ShutdownTimeout))
	}
	if strings.TrimSpace(c.UI.ThemeCookie) == "" {
		errs = append(errs, errors.New("ui.theme_cookie is required"))
	}
	if s := c.UI.SessionSecret; s != "" && len(s) < 32 {
		errs = append(errs, fmt.Errorf("ui.session_secret must be at least 32 bytes, got %d", len(s)))
	}
	if strings.TrimSpace(c.Site.Name) == "" {
		errs = append(errs, errors.New("site.name is required"))
	}

	return errors.Join(errs...)
}
