// Package theme models the light/dark preference and the mount-gated toggle
// rendered in the top bar.
//
// The preference itself belongs to an external provider. This package only
// reads it through an injected Context and requests changes through the
// Context's setter.
package theme

// Value is the theme reported by the provider.
type Value int

const (
	// Unset means the provider has not reported a value yet.
	Unset Value = iota
	Light
	Dark
)

// String returns the persisted form: "light", "dark" or "" for Unset.
func (v Value) String() string {
	switch v {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return ""
	}
}

// Parse maps a persisted string back to a Value. Anything unrecognised is
// Unset.
func Parse(s string) Value {
	switch s {
	case "light":
		return Light
	case "dark":
		return Dark
	default:
		return Unset
	}
}

// IsDark reports whether v is Dark. Every other value reads as light.
func IsDark(v Value) bool {
	return v == Dark
}

// Next returns the value an activation writes. Only Light and Dark are ever
// produced.
func Next(v Value) Value {
	if IsDark(v) {
		return Light
	}
	return Dark
}

// Context is the injected provider: the current value and a setter.
type Context struct {
	Value Value
	Set   func(Value) error
}
