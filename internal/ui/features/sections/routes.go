// Package sections provides the registry-driven section pages and the
// not-found page.
package sections

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
)

// SetupRoutes registers a page for every navigation destination except the
// root, plus the not-found handler. It returns the handlers so other
// features can resolve section content, or an error when the registry
// does not pass Validate.
func SetupRoutes(router chi.Router, deps common.Deps) (*Handlers, error) {
	// Destinations become route patterns.
	if err := deps.Registry.Validate(); err != nil {
		return nil, fmt.Errorf("section routes: %w", err)
	}

	handlers := NewHandlers(deps)

	for _, item := range deps.Registry.Items() {
		if item.Destination == "/" {
			continue
		}
		router.Get(item.Destination, handlers.SectionPage)
	}
	router.NotFound(handlers.SectionPage)

	return handlers, nil
}
