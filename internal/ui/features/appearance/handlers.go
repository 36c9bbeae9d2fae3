package appearance

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

// Handlers serves the theme toggle.
type Handlers struct {
	deps common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// Mount replaces the inert toggle with the mounted one once the page has
// loaded and the stored theme can be read.
func (h *Handlers) Mount(w http.ResponseWriter, r *http.Request) {
	toggle := theme.Mount(theme.Context{Value: h.deps.Themes.Load(r)})

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(common.Component(toggle.Node())); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// Toggle flips the theme, stores it, patches the toggle and updates the
// dark class on the document element.
func (h *Handlers) Toggle(w http.ResponseWriter, r *http.Request) {
	// The cookie is written by ctx.Set, so it must run before the SSE
	// stream sends its headers.
	ctx := h.deps.Themes.Context(w, r)
	next, err := theme.Mount(ctx).Activate(ctx)
	if err != nil {
		h.deps.Log().Error("theme toggle", slog.String("error", err.Error()))
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	h.deps.Metrics.ThemeToggled(next.Value().String())
	h.deps.Log().Debug("theme toggled",
		slog.String("theme", next.Value().String()),
		slog.String("icon", next.Icon()),
	)

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(common.Component(next.Node())); err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.ExecuteScript(darkClassScript(next.Value())); err != nil {
		_ = sse.ConsoleError(err)
	}
}

func darkClassScript(v theme.Value) string {
	return fmt.Sprintf("document.documentElement.classList.toggle('dark', %t)", theme.IsDark(v))
}
