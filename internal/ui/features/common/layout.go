package common

import (
	"bytes"
	"net/http"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/leapstack-labs/shellboard/internal/ui/resources"
	"github.com/leapstack-labs/shellboard/internal/ui/shell"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// DocumentTitle joins the page title with the application name.
func DocumentTitle(p PageData) string {
	name := p.Registry.Name()
	switch {
	case p.Title == "":
		return name
	case name == "":
		return p.Title
	default:
		return p.Title + " - " + name
	}
}

// Document renders the full HTML page: head, the shell in its initial
// closed state and content in the main region.
func Document(p PageData, content g.Node) g.Node {
	signals := NewSignals(p.CurrentPath)
	layout := shell.NewController(shell.State{}, nil).Render(shell.Layout{
		Registry:     p.Registry,
		CurrentRoute: p.CurrentPath,
		Title:        HeaderTitle,
		Toggle:       theme.Unmounted(),
		Signals:      signals.Encode(),
	}, content)

	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			g.If(theme.IsDark(p.Theme), html.Class("dark")),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				g.If(p.Registry.Description() != "", html.Meta(html.Name("description"), html.Content(p.Registry.Description()))),
				html.TitleEl(g.Text(DocumentTitle(p))),
				html.Link(html.Rel("stylesheet"), html.Href(resources.StaticPath("app.css"))),
				html.Script(html.Type("module"), html.Src(datastarScript)),
			),
			html.Body(
				html.Class("ds-bg-base ds-text-primary"),
				layout,
				g.If(p.Live, html.Div(html.Class("hidden"), g.Attr("data-init", "@get('"+UpdatesPath+"')"))),
				g.If(p.IsDev, html.Div(html.Class("hidden"), g.Attr("data-init", "@get('/reload', {retryMaxCount: 1000})"))),
			),
		),
	)
}

// RenderPage writes the document with the given status. The page is
// rendered before any header is written so failures still answer 500.
func RenderPage(w http.ResponseWriter, r *http.Request, status int, p PageData, content g.Node) {
	var buf bytes.Buffer
	if err := Component(Document(p, content)).Render(r.Context(), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
