// Package router sets up HTTP routes for the UI server.
package router

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	appearanceFeature "github.com/leapstack-labs/shellboard/internal/ui/features/appearance"
	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	homeFeature "github.com/leapstack-labs/shellboard/internal/ui/features/home"
	sectionsFeature "github.com/leapstack-labs/shellboard/internal/ui/features/sections"
	shellFeature "github.com/leapstack-labs/shellboard/internal/ui/features/shell"
	"github.com/leapstack-labs/shellboard/internal/ui/resources"
)

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, deps common.Deps) error {
	// Hot reload endpoint for dev mode
	if deps.IsDev {
		setupReload(router)
	}

	// Static assets and metrics
	router.Handle("/static/*", resources.Handler())
	router.Handle("/metrics", deps.Metrics.Handler())

	// Feature routes. Sections own the not-found handler and render live
	// updates for every route the overview does not.
	sections, err := sectionsFeature.SetupRoutes(router, deps)
	if err != nil {
		return err
	}

	if err := homeFeature.SetupRoutes(router, deps, sections); err != nil {
		return err
	}

	if err := shellFeature.SetupRoutes(router, deps); err != nil {
		return err
	}

	if err := appearanceFeature.SetupRoutes(router, deps); err != nil {
		return err
	}

	return nil
}

func setupReload(router chi.Router) {
	reloadChan := make(chan struct{}, 1)
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)
		select {
		case <-reloadChan:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		select {
		case reloadChan <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
