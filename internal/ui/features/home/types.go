package home

// statusBadges maps known activity statuses to their badge variant.
var statusBadges = map[string]string{
	"success": "ds-badge ds-badge--success",
	"error":   "ds-badge ds-badge--error",
	"warning": "ds-badge ds-badge--warning",
	"info":    "ds-badge ds-badge--info",
}

const neutralBadge = "ds-badge ds-badge--neutral"

// quickActionClasses maps a quick action variant to its button classes.
var quickActionClasses = map[string]string{
	"primary":   "ds-btn ds-btn--full",
	"secondary": "ds-btn ds-btn--secondary ds-btn--full",
	"outline":   "ds-btn ds-btn--outline ds-btn--full",
	"ghost":     "ds-btn ds-btn--ghost ds-btn--full",
}

// BadgeClass returns the badge classes for status. Unknown statuses get the
// neutral badge.
func BadgeClass(status string) string {
	if c, ok := statusBadges[status]; ok {
		return c
	}
	return neutralBadge
}

// ButtonClass returns the button classes for a quick action variant.
// Unknown variants render as primary.
func ButtonClass(variant string) string {
	if c, ok := quickActionClasses[variant]; ok {
		return c
	}
	return quickActionClasses["primary"]
}
