// Package common provides shared types and rendering for UI features.
package common

import (
	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

// HeaderTitle is the title shown in the top bar on every page.
const HeaderTitle = "Dashboard"

// UpdatesPath is the long-lived SSE stream that re-patches #content.
const UpdatesPath = "/updates"

// PageData holds everything the document around a page needs.
type PageData struct {
	// Title is the page's own title; the document title appends the
	// application name.
	Title       string
	CurrentPath string
	Registry    nav.Registry
	Theme       theme.Value
	IsDev       bool

	// Live subscribes the page to UpdatesPath.
	Live bool
}

// Signals is the datastar signal set carried by every page. The shell
// handlers read it on each request and write back what changed.
type Signals struct {
	SidebarOpen bool   `json:"sidebarOpen"`
	Route       string `json:"route"`
	MountID     string `json:"mountId"`
}
