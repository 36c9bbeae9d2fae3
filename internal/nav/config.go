package nav

import "github.com/leapstack-labs/shellboard/internal/cli/config"

// FromConfig builds a registry from the site configuration. An empty nav
// list falls back to DefaultItems. The result is not validated.
func FromConfig(site config.SiteConfig) Registry {
	if len(site.Nav) == 0 {
		return New(site.Name, site.Title, site.Description, DefaultItems())
	}

	items := make([]Item, 0, len(site.Nav))
	for _, n := range site.Nav {
		items = append(items, Item{
			Label:       n.Label,
			Destination: n.Destination,
			Icon:        IconID(n.Icon),
		})
	}
	return New(site.Name, site.Title, site.Description, items)
}
