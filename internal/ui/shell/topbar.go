package shell

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/leapstack-labs/shellboard/internal/ui/icons"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

// TopBarID is the header element id.
const TopBarID = "topbar"

// TopBar renders the header above the content region.
type TopBar struct {
	Title       string
	OnMenuClick func()
	Toggle      theme.Toggle
}

// Activate handles a click on the menu trigger.
func (t TopBar) Activate() {
	if t.OnMenuClick != nil {
		t.OnMenuClick()
	}
}

// Node renders the header.
func (t TopBar) Node() g.Node {
	return html.Header(
		html.ID(TopBarID),
		html.Class("dashboard-header ds-flex ds-h-16 ds-items-center ds-justify-between ds-px-6"),
		html.Div(
			html.Class("ds-flex ds-items-center ds-gap-3"),
			html.Button(
				html.Type("button"),
				html.Class("ds-btn ds-btn--ghost ds-btn--icon lg:hidden"),
				html.Aria("label", "Open menu"),
				g.Attr("data-on:click", postAction(OpenPath)),
				icons.Menu(icons.DefaultSize),
			),
			html.H1(
				html.Class("font-display ds-text-lg ds-text-primary"),
				g.Text(t.Title),
			),
		),
		html.Div(
			html.Class("ds-flex ds-items-center ds-gap-2"),
			t.Toggle.Node(),
			html.Div(
				html.Class("ds-flex ds-h-8 ds-w-8 ds-items-center ds-justify-center ds-rounded-full ds-bg-inverted ds-text-on-inverted ds-text-sm ds-font-medium"),
				html.Aria("label", "Current user"),
				g.Text("U"),
			),
		),
	)
}
