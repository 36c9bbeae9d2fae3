// Package shell wires the sidebar open/close/navigate endpoints.
package shell

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	layout "github.com/leapstack-labs/shellboard/internal/ui/shell"
)

// SetupRoutes configures routes for the shell feature.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	handlers := NewHandlers(deps)

	router.Post(layout.OpenPath, handlers.Open)
	router.Post(layout.ClosePath, handlers.Close)
	router.Post(layout.NavigatePath, handlers.Navigate)

	return nil
}
