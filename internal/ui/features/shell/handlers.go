package shell

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	layout "github.com/leapstack-labs/shellboard/internal/ui/shell"
)

// Handlers applies sidebar transitions sent by the client. The state lives
// in the client's sidebarOpen signal; every request rebuilds a controller
// from it, applies one transition and patches back only what changed.
type Handlers struct {
	deps common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// Open handles the top bar's menu trigger.
func (h *Handlers) Open(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "open", func(c *layout.Controller, _ common.Signals) error {
		c.Open()
		return nil
	})
}

// Close handles the overlay and the panel's close button.
func (h *Handlers) Close(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "close", func(c *layout.Controller, sig common.Signals) error {
		c.Panel(h.deps.Registry, sig.Route, nil).Dismiss()
		return nil
	})
}

// Navigate handles a click on a navigation row: the panel is closed and
// patched first, then the client is redirected to the destination.
func (h *Handlers) Navigate(w http.ResponseWriter, r *http.Request) {
	destination := r.URL.Query().Get("to")
	item, ok := h.deps.Registry.Lookup(destination)

	var target string
	h.transition(w, r, "navigate", func(c *layout.Controller, sig common.Signals) error {
		if !ok {
			return fmt.Errorf("unknown navigation destination %q", destination)
		}
		c.Panel(h.deps.Registry, sig.Route, func(dest string) { target = dest }).Activate(item)
		return nil
	}, func(sse *datastar.ServerSentEventGenerator) error {
		return sse.Redirect(target)
	})
}

// transition reads the signals, applies fn and patches the panel and the
// sidebarOpen signal when the state changed. after runs once the patches
// are sent, whether or not anything changed.
func (h *Handlers) transition(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	fn func(*layout.Controller, common.Signals) error,
	after ...func(*datastar.ServerSentEventGenerator) error,
) {
	logger := h.deps.Log()

	sig, err := common.ReadSignals(r)
	if err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	changed := false
	c := layout.NewController(layout.State{SidebarOpen: sig.SidebarOpen}, func(layout.State) { changed = true })

	if err := fn(c, sig); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	h.deps.Metrics.ShellTransition(action, changed)
	logger.Debug("shell transition",
		slog.String("action", action),
		slog.Bool("changed", changed),
		slog.Bool("sidebar_open", c.State().SidebarOpen),
		slog.String("route", sig.Route),
		slog.String("mount_id", sig.MountID),
	)

	sse := datastar.NewSSE(w, r)
	if changed {
		if err := h.patch(sse, c, sig.Route); err != nil {
			_ = sse.ConsoleError(err)
			return
		}
	}

	for _, step := range after {
		if err := step(sse); err != nil {
			_ = sse.ConsoleError(err)
			return
		}
	}
}

func (h *Handlers) patch(sse *datastar.ServerSentEventGenerator, c *layout.Controller, route string) error {
	panel := c.Panel(h.deps.Registry, route, nil)
	if err := sse.PatchElementTempl(common.Component(panel.Node())); err != nil {
		return fmt.Errorf("patch panel: %w", err)
	}
	if err := sse.MarshalAndPatchSignals(c.State()); err != nil {
		return fmt.Errorf("patch signals: %w", err)
	}
	return nil
}
