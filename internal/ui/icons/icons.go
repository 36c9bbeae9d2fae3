// Package icons renders the inline SVG glyphs used by the dashboard shell.
package icons

import (
	"strconv"

	g "maragu.dev/gomponents"

	"github.com/leapstack-labs/shellboard/internal/nav"
)

// Identifiers for glyphs used by stat cards. They share the nav.IconID space
// so data files can name any glyph with one string type.
const (
	IDTrendingUp nav.IconID = "TrendingUp"
	IDActivity   nav.IconID = "Activity"
)

// DefaultSize is the glyph size used in navigation rows and buttons.
const DefaultSize = 18

// Glyph returns the glyph for id. Unknown ids render the dashboard glyph.
func Glyph(id nav.IconID, size int) g.Node {
	switch id {
	case nav.IconLayoutDashboard:
		return LayoutDashboard(size)
	case nav.IconFolderKanban:
		return FolderKanban(size)
	case nav.IconUsers:
		return Users(size)
	case nav.IconBarChart3:
		return BarChart3(size)
	case nav.IconSettings:
		return Settings(size)
	case IDTrendingUp:
		return TrendingUp(size)
	case IDActivity:
		return Activity(size)
	default:
		return LayoutDashboard(size)
	}
}

var names = map[nav.IconID]string{
	nav.IconLayoutDashboard: "layout-dashboard",
	nav.IconFolderKanban:    "folder-kanban",
	nav.IconUsers:           "users",
	nav.IconBarChart3:       "bar-chart-3",
	nav.IconSettings:        "settings",
	IDTrendingUp:            "trending-up",
	IDActivity:              "activity",
}

// Name returns the name of the glyph Glyph renders for id.
func Name(id nav.IconID) string {
	if n, ok := names[id]; ok {
		return n
	}
	return names[nav.IconLayoutDashboard]
}

func svg(name string, size int, children ...g.Node) g.Node {
	s := strconv.Itoa(size)
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", s),
		g.Attr("height", s),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", name),
		g.Group(children),
	)
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func rect(x, y, w, h string) g.Node {
	return g.El("rect",
		g.Attr("x", x), g.Attr("y", y),
		g.Attr("width", w), g.Attr("height", h),
		g.Attr("rx", "1"),
	)
}

func circle(cx, cy, r string) g.Node {
	return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r))
}

func polyline(points string) g.Node {
	return g.El("polyline", g.Attr("points", points))
}

// LayoutDashboard is also the fallback glyph.
func LayoutDashboard(size int) g.Node {
	return svg("layout-dashboard", size,
		rect("3", "3", "7", "9"),
		rect("14", "3", "7", "5"),
		rect("14", "12", "7", "9"),
		rect("3", "16", "7", "5"),
	)
}

func FolderKanban(size int) g.Node {
	return svg("folder-kanban", size,
		path("M4 20h16a2 2 0 0 0 2-2V8a2 2 0 0 0-2-2h-7.93a2 2 0 0 1-1.66-.9l-.82-1.2A2 2 0 0 0 7.93 3H4a2 2 0 0 0-2 2v13c0 1.1.9 2 2 2Z"),
		path("M8 10v4"),
		path("M12 10v2"),
		path("M16 10v6"),
	)
}

func Users(size int) g.Node {
	return svg("users", size,
		path("M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"),
		circle("9", "7", "4"),
		path("M22 21v-2a4 4 0 0 0-3-3.87"),
		path("M16 3.13a4 4 0 0 1 0 7.75"),
	)
}

func BarChart3(size int) g.Node {
	return svg("bar-chart-3", size,
		path("M3 3v18h18"),
		path("M18 17V9"),
		path("M13 17V5"),
		path("M8 17v-3"),
	)
}

func Settings(size int) g.Node {
	return svg("settings", size,
		path("M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74l-.15.09a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73V20a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74l.15-.09a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25a2 2 0 0 1-1-1.73V4a2 2 0 0 0-2-2z"),
		circle("12", "12", "3"),
	)
}

func TrendingUp(size int) g.Node {
	return svg("trending-up", size,
		polyline("22 7 13.5 15.5 8.5 10.5 2 17"),
		polyline("16 7 22 7 22 13"),
	)
}

func Activity(size int) g.Node {
	return svg("activity", size,
		path("M22 12h-4l-3 9L9 3l-3 9H2"),
	)
}

func Menu(size int) g.Node {
	return svg("menu", size,
		path("M4 12h16"),
		path("M4 6h16"),
		path("M4 18h16"),
	)
}

func Close(size int) g.Node {
	return svg("x", size,
		path("M18 6 6 18"),
		path("m6 6 12 12"),
	)
}

func Sun(size int) g.Node {
	return svg("sun", size,
		circle("12", "12", "4"),
		path("M12 2v2"),
		path("M12 20v2"),
		path("m4.93 4.93 1.41 1.41"),
		path("m17.66 17.66 1.41 1.41"),
		path("M2 12h2"),
		path("M20 12h2"),
		path("m6.34 17.66-1.41 1.41"),
		path("m19.07 4.93-1.41 1.41"),
	)
}

func Moon(size int) g.Node {
	return svg("moon", size,
		path("M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"),
	)
}
