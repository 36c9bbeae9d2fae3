package common

import (
	"log/slog"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/leapstack-labs/shellboard/internal/dashdata"
	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/ui/metrics"
	"github.com/leapstack-labs/shellboard/internal/ui/notifier"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

// Deps are the shared dependencies handed to every feature.
type Deps struct {
	Registry nav.Registry
	Data     *dashdata.Store
	Themes   *theme.SessionStore
	Notifier *notifier.Notifier
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	IsDev    bool
}

// Log returns the logger, or a discarding one when unset.
func (d Deps) Log() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// Page builds the PageData for a request. The theme comes from the
// request's cookie so the first paint already has the right colors.
func (d Deps) Page(r *http.Request, title string) PageData {
	var v theme.Value
	if d.Themes != nil {
		v = d.Themes.Load(r)
	}
	return PageData{
		Title:       title,
		CurrentPath: r.URL.Path,
		Registry:    d.Registry,
		Theme:       v,
		IsDev:       d.IsDev,
		Live:        d.Notifier != nil,
	}
}

// View is the content region rendered for one route.
type View struct {
	Title   string
	Content g.Node
	Status  int
}

// Resolver renders the content region for a route.
type Resolver interface {
	Resolve(route string) View
}

// Snapshot returns the current dashboard data, or the built-in data when
// no store is configured.
func (d Deps) Snapshot() *dashdata.Data {
	if d.Data == nil {
		return dashdata.Default()
	}
	return d.Data.Snapshot()
}
