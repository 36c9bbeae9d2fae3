// Package nav holds the static navigation registry for the dashboard shell.
//
// A Registry is built once at startup and shared read-only by every render.
// Active highlighting is a pure derivation from the current route, so the
// package has no dependency on HTTP or rendering.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

// IconID names the glyph shown next to a navigation entry.
// Values outside the known set are allowed; they render the default glyph.
type IconID string

// Known icon identifiers.
const (
	IconLayoutDashboard IconID = "LayoutDashboard"
	IconFolderKanban    IconID = "FolderKanban"
	IconUsers           IconID = "Users"
	IconBarChart3       IconID = "BarChart3"
	IconSettings        IconID = "Settings"
)

// Known reports whether the id maps to a dedicated glyph.
func (id IconID) Known() bool {
	switch id {
	case IconLayoutDashboard, IconFolderKanban, IconUsers, IconBarChart3, IconSettings:
		return true
	default:
		return false
	}
}

// Item is a single navigation entry.
type Item struct {
	Label       string
	Destination string
	Icon        IconID
}

// Validation errors returned (joined) by Registry.Validate.
var (
	ErrEmptyName            = errors.New("application name is empty")
	ErrEmptyLabel           = errors.New("navigation label is empty")
	ErrInvalidDestination   = errors.New("navigation destination must be a plain path starting with /")
	ErrDuplicateDestination = errors.New("duplicate navigation destination")
	ErrReservedDestination  = errors.New("navigation destination is reserved by the server")
)

// ReservedPrefixes are the server's own routes. A destination equal to one
// of them, or below one, would shadow it.
var ReservedPrefixes = []string{"/metrics", "/updates", "/static", "/shell", "/theme", "/reload", "/hotreload"}

// invalidDestinationChars are router pattern characters plus query and
// fragment markers; a destination holding them can never equal a path.
const invalidDestinationChars = "{}*?#"

func reserved(destination string) bool {
	for _, p := range ReservedPrefixes {
		if destination == p || strings.HasPrefix(destination, p+"/") {
			return true
		}
	}
	return false
}

// Registry is the ordered list of navigation entries plus the application
// display strings. The zero value is an empty registry.
type Registry struct {
	name        string
	title       string
	description string
	items       []Item
}

// New builds a registry. The items slice is copied.
func New(name, title, description string, items []Item) Registry {
	cp := make([]Item, len(items))
	copy(cp, items)
	return Registry{
		name:        name,
		title:       title,
		description: description,
		items:       cp,
	}
}

// DefaultItems returns the built-in navigation entries.
func DefaultItems() []Item {
	return []Item{
		{Label: "Dashboard", Destination: "/", Icon: IconLayoutDashboard},
		{Label: "Projects", Destination: "/projects", Icon: IconFolderKanban},
		{Label: "Team", Destination: "/team", Icon: IconUsers},
		{Label: "Analytics", Destination: "/analytics", Icon: IconBarChart3},
		{Label: "Settings", Destination: "/settings", Icon: IconSettings},
	}
}

// Default returns the built-in registry.
func Default() Registry {
	return New(
		"My App",
		"My App - Dashboard",
		"A modern dashboard built with the Digiko Design System.",
		DefaultItems(),
	)
}

// Name returns the application display name.
func (r Registry) Name() string { return r.name }

// Title returns the document title used for the application.
func (r Registry) Title() string { return r.title }

// Description returns the meta description.
func (r Registry) Description() string { return r.description }

// Len returns the number of entries.
func (r Registry) Len() int { return len(r.items) }

// Items returns a copy of the entries in display order.
func (r Registry) Items() []Item {
	cp := make([]Item, len(r.items))
	copy(cp, r.items)
	return cp
}

// IsActive reports whether item is the entry for currentRoute.
func IsActive(item Item, currentRoute string) bool {
	return item.Destination == currentRoute
}

// Active returns the indexes of every entry matching currentRoute.
// With unique destinations this is at most one index; an unmatched route
// yields none.
func (r Registry) Active(currentRoute string) []int {
	var idx []int
	for i, item := range r.items {
		if IsActive(item, currentRoute) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Lookup finds the entry for destination.
func (r Registry) Lookup(destination string) (Item, bool) {
	for _, item := range r.items {
		if item.Destination == destination {
			return item, true
		}
	}
	return Item{}, false
}

// Validate checks the registry for configuration mistakes. All problems are
// reported together.
func (r Registry) Validate() error {
	var errs []error

	if strings.TrimSpace(r.name) == "" {
		errs = append(errs, ErrEmptyName)
	}

	seen := make(map[string]int, len(r.items))
	for i, item := range r.items {
		if strings.TrimSpace(item.Label) == "" {
			errs = append(errs, fmt.Errorf("item %d: %w", i, ErrEmptyLabel))
		}
		switch {
		case !strings.HasPrefix(item.Destination, "/"),
			strings.ContainsAny(item.Destination, invalidDestinationChars):
			errs = append(errs, fmt.Errorf("item %d (%q): %w", i, item.Destination, ErrInvalidDestination))
		case reserved(item.Destination):
			errs = append(errs, fmt.Errorf("item %d (%q): %w", i, item.Destination, ErrReservedDestination))
		}
		if prev, ok := seen[item.Destination]; ok {
			errs = append(errs, fmt.Errorf("items %d and %d (%q): %w", prev, i, item.Destination, ErrDuplicateDestination))
			continue
		}
		seen[item.Destination] = i
	}

	return errors.Join(errs...)
}
