package shell

import (
	"net/url"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"

	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/ui/icons"
)

// PanelID is the element patched after a sidebar transition.
const PanelID = "sidebar"

const (
	asideClass    = "fixed top-0 left-0 z-50 flex h-screen w-64 flex-col border-r border-border-default bg-surface transition-transform duration-300"
	overlayClass  = "fixed inset-0 z-40 bg-overlay lg:hidden"
	rowClass      = "flex items-center gap-3 rounded-lg px-3 py-2.5 text-sm transition-colors"
	activeClass   = "bg-elevated text-primary font-medium"
	inactiveClass = "text-secondary hover:bg-hover hover:text-primary"
)

// Panel is the side navigation panel.
type Panel struct {
	Registry     nav.Registry
	CurrentRoute string
	Open         bool
	OnClose      func()
	Navigate     func(destination string)
}

// Activate handles a click on a navigation row: the close request goes out
// first, then the navigation. Both happen whatever Open is.
func (p Panel) Activate(item nav.Item) {
	if p.OnClose != nil {
		p.OnClose()
	}
	if p.Navigate != nil {
		p.Navigate(item.Destination)
	}
}

// Dismiss handles the overlay and the close button. It never navigates.
func (p Panel) Dismiss() {
	if p.OnClose != nil {
		p.OnClose()
	}
}

// Node renders the overlay (when open) and the fixed aside.
func (p Panel) Node() g.Node {
	items := p.Registry.Items()
	active := make(map[int]bool, 1)
	for _, i := range p.Registry.Active(p.CurrentRoute) {
		active[i] = true
	}
	rows := make([]g.Node, len(items))
	for i, item := range items {
		rows[i] = p.row(item, active[i])
	}

	return html.Div(
		html.ID(PanelID),
		g.If(p.Open, html.Div(
			html.Class(overlayClass),
			g.Attr("data-overlay", ""),
			g.Attr("data-on:click", postAction(ClosePath)),
		)),
		html.Aside(
			c.Classes{
				asideClass:          true,
				"lg:translate-x-0":  true,
				"translate-x-0":     p.Open,
				"-translate-x-full": !p.Open,
			},
			g.Attr("data-open", boolAttr(p.Open)),
			p.brand(),
			html.Nav(
				html.Class("flex-1 overflow-y-auto px-3 py-4"),
				html.Ul(
					html.Class("space-y-1"),
					g.Group(rows),
				),
			),
			html.Div(
				html.Class("border-t border-border-default px-6 py-4"),
				html.P(
					html.Class("text-xs text-tertiary"),
					g.Text("Built with Digiko DS"),
				),
			),
		),
	)
}

func (p Panel) brand() g.Node {
	return html.Div(
		html.Class("flex h-16 items-center justify-between border-b border-border-default px-6"),
		html.A(
			html.Href("/"),
			html.Class("font-display text-lg text-primary"),
			g.Text(p.Registry.Name()),
		),
		html.Button(
			html.Type("button"),
			html.Class("ds-btn ds-btn--ghost ds-btn--icon lg:hidden"),
			html.Aria("label", "Close sidebar"),
			g.Attr("data-on:click", postAction(ClosePath)),
			icons.Close(icons.DefaultSize),
		),
	)
}

func (p Panel) row(item nav.Item, active bool) g.Node {
	return html.Li(
		html.A(
			html.Href(item.Destination),
			c.Classes{
				rowClass:      true,
				activeClass:   active,
				inactiveClass: !active,
			},
			g.If(active, html.Aria("current", "page")),
			g.Attr("data-on:click__prevent", postAction(NavigatePath+"?to="+url.QueryEscape(item.Destination))),
			icons.Glyph(item.Icon, icons.DefaultSize),
			g.Text(item.Label),
		),
	)
}

func postAction(path string) string {
	return "@post('" + path + "')"
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
