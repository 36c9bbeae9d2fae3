package theme

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/leapstack-labs/shellboard/internal/ui/icons"
)

// Endpoints the toggle talks to.
const (
	MountPath  = "/theme/mount"
	TogglePath = "/theme/toggle"
)

// ElementID is the DOM id shared by the mounted and unmounted toggle so one
// can be patched over the other.
const ElementID = "theme-toggle"

const buttonClass = "ds-btn ds-btn--ghost ds-btn--icon"

// Toggle is the theme button. The zero value is unmounted.
type Toggle struct {
	mounted bool
	value   Value
}

// Unmounted returns the inert toggle rendered before the provider's value is
// known.
func Unmounted() Toggle {
	return Toggle{}
}

// Mount reads the provider's value once and returns a live toggle.
func Mount(ctx Context) Toggle {
	return Toggle{mounted: true, value: ctx.Value}
}

// Mounted reports whether the provider value has been read.
func (t Toggle) Mounted() bool { return t.mounted }

// Value returns the value read at mount, or Unset before mount.
func (t Toggle) Value() Value { return t.value }

// Icon returns the name of the glyph shown: "sun" when dark, "moon"
// otherwise, and "" before mount.
func (t Toggle) Icon() string {
	switch {
	case !t.mounted:
		return ""
	case IsDark(t.value):
		return "sun"
	default:
		return "moon"
	}
}

// Activate writes the opposite of the provider's current value. An unmounted
// toggle ignores activation.
func (t Toggle) Activate(ctx Context) (Toggle, error) {
	if !t.mounted {
		return t, nil
	}

	next := Next(ctx.Value)
	if ctx.Set != nil {
		if err := ctx.Set(next); err != nil {
			return t, fmt.Errorf("set theme %s: %w", next, err)
		}
	}
	return Toggle{mounted: true, value: next}, nil
}

// Node renders the toggle.
func (t Toggle) Node() g.Node {
	if !t.Mounted() {
		return html.Button(
			html.ID(ElementID),
			html.Type("button"),
			html.Class(buttonClass),
			html.Aria("label", "Toggle theme"),
			html.Disabled(),
			g.Attr("data-init", "@get('"+MountPath+"')"),
		)
	}

	glyph := icons.Moon(icons.DefaultSize)
	shown := Light
	if t.Icon() == "sun" {
		glyph = icons.Sun(icons.DefaultSize)
		shown = Dark
	}

	return html.Button(
		html.ID(ElementID),
		html.Type("button"),
		html.Class(buttonClass),
		html.Aria("label", "Toggle theme"),
		g.Attr("data-theme", shown.String()),
		g.Attr("data-on:click", "@post('"+TogglePath+"')"),
		glyph,
	)
}
