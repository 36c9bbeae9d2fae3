package home

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/leapstack-labs/shellboard/internal/dashdata"
	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/ui/icons"
)

// Title is the overview page title.
const Title = "Overview"

// Overview renders the overview content: stat cards, recent activity and
// quick actions.
func Overview(d *dashdata.Data) g.Node {
	return g.Group{
		html.Div(
			html.Class("ds-mb-8"),
			html.H2(html.Class("font-display ds-text-2xl ds-text-primary"), g.Text(Title)),
			html.P(html.Class("ds-mt-1 ds-text-sm ds-text-secondary"), g.Text("Welcome back. Here's what's happening.")),
		),
		html.Div(
			html.Class("ds-grid ds-grid-cols-1 ds-gap-4 ds-sm:grid-cols-2 ds-lg:grid-cols-4"),
			g.Map(d.Stats, statCard),
		),
		html.Div(
			html.Class("ds-mt-8 ds-grid ds-grid-cols-1 ds-gap-6 ds-lg:grid-cols-3"),
			html.Div(html.Class("ds-lg:col-span-2"), activityCard(d.Activity)),
			quickActionsCard(d.QuickActions),
		),
	}
}

func statCard(s dashdata.Stat) g.Node {
	return html.Div(
		html.Class("ds-card ds-card__body"),
		g.Attr("data-stat", s.Label),
		html.Div(
			html.Class("ds-flex ds-items-center ds-justify-between"),
			html.P(html.Class("ds-text-sm ds-text-secondary"), g.Text(s.Label)),
			html.Span(html.Class("ds-text-tertiary"), icons.Glyph(nav.IconID(s.Icon), icons.DefaultSize)),
		),
		html.P(html.Class("ds-mt-2 font-display ds-text-2xl ds-text-primary"), g.Text(s.Display())),
		html.P(html.Class("ds-mt-1 ds-text-xs ds-text-tertiary"), g.Text(s.Detail)),
	)
}

func activityCard(rows []dashdata.Activity) g.Node {
	return html.Div(
		html.Class("ds-card"),
		cardHeader("Recent Activity"),
		html.Div(
			html.Class("ds-card__body ds-p-0"),
			html.Div(
				html.Class("ds-table-wrapper"),
				html.Table(
					html.Class("ds-table"),
					html.THead(html.Tr(
						html.Th(g.Text("Action")),
						html.Th(g.Text("Project")),
						html.Th(g.Text("Status")),
						html.Th(g.Text("Time")),
					)),
					html.TBody(g.Map(rows, activityRow)),
				),
			),
		),
	)
}

func activityRow(a dashdata.Activity) g.Node {
	return html.Tr(
		html.Td(g.Text(a.Action)),
		html.Td(html.Class("ds-text-secondary"), g.Text(a.Project)),
		html.Td(html.Span(html.Class(BadgeClass(a.Status)), g.Text(a.Status))),
		html.Td(html.Class("ds-text-tertiary"), g.Text(a.Time)),
	)
}

func quickActionsCard(actions []dashdata.QuickAction) g.Node {
	return html.Div(
		html.Class("ds-card"),
		cardHeader("Quick Actions"),
		html.Div(
			html.Class("ds-card__body ds-space-y-3"),
			g.Map(actions, func(a dashdata.QuickAction) g.Node {
				return html.Button(html.Type("button"), html.Class(ButtonClass(a.Variant)), g.Text(a.Label))
			}),
		),
	)
}

func cardHeader(title string) g.Node {
	return html.Div(
		html.Class("ds-card__header"),
		html.H3(html.Class("ds-card__title"), g.Text(title)),
	)
}
