package shell

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

// DOM ids of the regions patched independently.
const (
	RootID    = "shell"
	ContentID = "content"
)

// Endpoints the shell's controls post to.
const (
	OpenPath     = "/shell/open"
	ClosePath    = "/shell/close"
	NavigatePath = "/shell/navigate"
)

// Layout carries everything the shell renders apart from its own state.
type Layout struct {
	Registry     nav.Registry
	CurrentRoute string
	Title        string
	Toggle       theme.Toggle

	// Signals is the datastar signal object placed on the root element,
	// already encoded as JSON. Empty means no signals attribute.
	Signals string
}

// Controller owns the shell State. Transitions are reported to onChange only
// when the state actually changes.
type Controller struct {
	state    State
	onChange func(State)
}

// NewController starts from initial. onChange may be nil.
func NewController(initial State, onChange func(State)) *Controller {
	return &Controller{state: initial, onChange: onChange}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Open opens the sidebar.
func (c *Controller) Open() {
	if c.state.Open() {
		c.changed()
	}
}

// Close closes the sidebar.
func (c *Controller) Close() {
	if c.state.Close() {
		c.changed()
	}
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

// Panel returns the side panel bound to this controller; its close requests
// route to Close.
func (c *Controller) Panel(reg nav.Registry, currentRoute string, navigate func(string)) Panel {
	return Panel{
		Registry:     reg,
		CurrentRoute: currentRoute,
		Open:         c.state.SidebarOpen,
		OnClose:      c.Close,
		Navigate:     navigate,
	}
}

// TopBar returns the top bar bound to this controller; its menu trigger
// routes to Open.
func (c *Controller) TopBar(title string, toggle theme.Toggle) TopBar {
	return TopBar{
		Title:       title,
		OnMenuClick: c.Open,
		Toggle:      toggle,
	}
}

// Render produces the full two-region layout around content.
func (c *Controller) Render(layout Layout, content g.Node) g.Node {
	panel := c.Panel(layout.Registry, layout.CurrentRoute, nil)
	bar := c.TopBar(layout.Title, layout.Toggle)

	return html.Div(
		html.ID(RootID),
		html.Class("ds-min-h-screen ds-bg-base"),
		g.If(layout.Signals != "", g.Attr("data-signals", layout.Signals)),
		panel.Node(),
		html.Div(
			html.Class("main-offset"),
			bar.Node(),
			Content(content),
		),
	)
}

// Content wraps content in the main region. Live updates patch this element.
func Content(content g.Node) g.Node {
	return html.Main(
		html.ID(ContentID),
		html.Class("ds-p-6"),
		content,
	)
}
