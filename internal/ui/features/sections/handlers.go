package sections

import (
	"log/slog"
	"net/http"

	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
)

// NotFoundTitle is the page title for unregistered routes.
const NotFoundTitle = "Not Found"

// Handlers serves the section pages listed in the navigation registry and
// the not-found page.
type Handlers struct {
	deps common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// Resolve renders the content for route: the section page when the route is
// registered, the not-found page otherwise.
func (h *Handlers) Resolve(route string) common.View {
	item, ok := h.deps.Registry.Lookup(route)
	if !ok {
		return common.View{Title: NotFoundTitle, Content: notFoundView(route), Status: http.StatusNotFound}
	}

	title := item.Label
	var body string
	if page, ok := h.deps.Snapshot().Pages[route]; ok {
		if page.Title != "" {
			title = page.Title
		}
		if page.Body != "" {
			rendered, err := renderMarkdown(page.Body)
			if err != nil {
				h.deps.Log().Warn("section body", slog.String("route", route), slog.String("error", err.Error()))
			}
			body = rendered
		}
	}

	return common.View{Title: title, Content: sectionView(item, title, body), Status: http.StatusOK}
}

// SectionPage renders the page for the request path.
func (h *Handlers) SectionPage(w http.ResponseWriter, r *http.Request) {
	v := h.Resolve(r.URL.Path)

	label := r.URL.Path
	if v.Status == http.StatusNotFound {
		label = "not_found"
	}
	h.deps.Metrics.PageRendered(label)

	common.RenderPage(w, r, v.Status, h.deps.Page(r, v.Title), v.Content)
}
