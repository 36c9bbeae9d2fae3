package home

import (
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	"github.com/leapstack-labs/shellboard/internal/ui/shell"
)

// Handlers provides HTTP handlers for the overview page and live updates.
type Handlers struct {
	deps     common.Deps
	fallback common.Resolver
}

// NewHandlers creates a new Handlers instance. fallback renders live
// updates for routes other than the overview; it may be nil.
func NewHandlers(deps common.Deps, fallback common.Resolver) *Handlers {
	return &Handlers{deps: deps, fallback: fallback}
}

// Resolve renders the content region for route.
func (h *Handlers) Resolve(route string) common.View {
	if route != "/" && route != "" && h.fallback != nil {
		return h.fallback.Resolve(route)
	}
	return common.View{Title: Title, Content: Overview(h.deps.Snapshot()), Status: http.StatusOK}
}

// HomePage renders the overview page with full content.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	h.deps.Metrics.PageRendered("/")
	common.RenderPage(w, r, http.StatusOK, h.deps.Page(r, Title), Overview(h.deps.Snapshot()))
}

// HomePageUpdates is the long-lived SSE endpoint shared by every page.
// It re-patches the content region for the caller's route whenever the
// dashboard data changes. No initial state is sent; the page already has it.
func (h *Handlers) HomePageUpdates(w http.ResponseWriter, r *http.Request) {
	logger := h.deps.Log()

	route := "/"
	sig, err := common.ReadSignals(r)
	if err != nil {
		logger.Debug("updates without signals", slog.String("error", err.Error()))
	} else if sig.Route != "" {
		route = sig.Route
	}

	sse := datastar.NewSSE(w, r)
	if h.deps.Notifier == nil {
		return
	}

	updates := h.deps.Notifier.Subscribe()
	defer h.deps.Notifier.Unsubscribe(updates)
	h.deps.Metrics.ListenerAdded()
	defer h.deps.Metrics.ListenerRemoved()

	logger.Debug("live updates subscribed", slog.String("route", route), slog.String("mount_id", sig.MountID))

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := h.sendContent(sse, route); err != nil {
				_ = sse.ConsoleError(err)
				// Keep the stream; the next update may succeed.
			}
		}
	}
}

func (h *Handlers) sendContent(sse *datastar.ServerSentEventGenerator, route string) error {
	v := h.Resolve(route)
	return sse.PatchElementTempl(common.Component(shell.Content(v.Content)))
}
