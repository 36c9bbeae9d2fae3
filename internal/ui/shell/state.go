// Package shell renders the persistent page layout: the side navigation
// panel, the top bar and the content slot, together with the one piece of
// interactive state they share, the narrow-viewport sidebar flag.
package shell

// State is the shell's interactive state. The zero value is closed.
type State struct {
	SidebarOpen bool `json:"sidebarOpen"`
}

// Open marks the sidebar open and reports whether anything changed.
func (s *State) Open() bool {
	if s.SidebarOpen {
		return false
	}
	s.SidebarOpen = true
	return true
}

// Close marks the sidebar closed and reports whether anything changed.
func (s *State) Close() bool {
	if !s.SidebarOpen {
		return false
	}
	s.SidebarOpen = false
	return true
}
