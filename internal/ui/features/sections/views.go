package sections

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/ui/icons"
)

// emptyState is shown for sections without a body.
const emptyState = "Nothing here yet."

func heading(title, subtitle string) g.Node {
	return html.Div(
		html.Class("ds-mb-8"),
		html.H2(html.Class("font-display ds-text-2xl ds-text-primary"), g.Text(title)),
		g.If(subtitle != "", html.P(html.Class("ds-mt-1 ds-text-sm ds-text-secondary"), g.Text(subtitle))),
	)
}

// sectionView renders a section page. body is trusted HTML produced by the
// Markdown renderer; empty means no content was configured.
func sectionView(item nav.Item, title, body string) g.Node {
	return g.Group{
		heading(title, ""),
		html.Div(
			html.Class("ds-card"),
			g.Attr("data-section", item.Destination),
			html.Div(
				html.Class("ds-card__body"),
				g.If(body == "", html.Div(
					html.Class("ds-flex ds-items-center ds-gap-3 ds-text-secondary"),
					icons.Glyph(item.Icon, icons.DefaultSize),
					html.P(g.Text(emptyState)),
				)),
				g.If(body != "", html.Div(html.Class("ds-prose"), g.Raw(body))),
			),
		),
	}
}

func notFoundView(route string) g.Node {
	return g.Group{
		heading("Page not found", "No page is registered at "+route+"."),
		html.A(html.Href("/"), html.Class("ds-btn ds-btn--outline"), g.Text("Back to dashboard")),
	}
}
