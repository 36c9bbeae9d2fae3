// Package appearance provides the theme toggle endpoints.
package appearance

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

// SetupRoutes configures routes for the appearance feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	if deps.Themes == nil {
		return fmt.Errorf("appearance: theme store is required")
	}
	handlers := NewHandlers(deps)

	router.Get(theme.MountPath, handlers.Mount)
	router.Post(theme.TogglePath, handlers.Toggle)

	return nil
}
