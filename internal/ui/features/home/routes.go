// Package home provides the overview page and the live update stream.
package home

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(router chi.Router, deps common.Deps, fallback common.Resolver) error {
	handlers := NewHandlers(deps, fallback)

	router.Get("/", handlers.HomePage)
	router.Get(common.UpdatesPath, handlers.HomePageUpdates)

	return nil
}
