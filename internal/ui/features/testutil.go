// Package features provides shared test utilities for UI feature tests.
package features

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/shellboard/internal/dashdata"
	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/testutil"
	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	"github.com/leapstack-labs/shellboard/internal/ui/metrics"
	"github.com/leapstack-labs/shellboard/internal/ui/notifier"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

// TestPage is a section body written into the fixture's data file.
type TestPage struct {
	Route string
	Title string
	Body  string
}

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Deps         common.Deps
	Data         *dashdata.Store
	Notifier     *notifier.Notifier
	Metrics      *metrics.Metrics
	SessionStore *sessions.CookieStore
	Themes       *theme.SessionStore

	t        *testing.T
	dataPath string
}

// SetupTestFixture builds the handler dependencies around the default
// registry and a data file in a temp directory holding pages.
func SetupTestFixture(t *testing.T, pages ...TestPage) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)
	dataPath := filepath.Join(t.TempDir(), "dashboard.yaml")
	writeData(t, dataPath, pages)

	store, err := dashdata.NewStore(dataPath)
	require.NoError(t, err)

	sessionStore := NewTestSessionStore()
	themes := theme.NewSessionStore(sessionStore, theme.DefaultCookieName)
	notify := notifier.New(logger)
	m := metrics.New()

	return &TestFixture{
		Deps: common.Deps{
			Registry: nav.Default(),
			Data:     store,
			Themes:   themes,
			Notifier: notify,
			Metrics:  m,
			Logger:   logger,
			IsDev:    false,
		},
		Data:         store,
		Notifier:     notify,
		Metrics:      m,
		SessionStore: sessionStore,
		Themes:       themes,
		t:            t,
		dataPath:     dataPath,
	}
}

// SetPages rewrites the data file and reloads the store.
func (f *TestFixture) SetPages(pages ...TestPage) {
	f.t.Helper()
	writeData(f.t, f.dataPath, pages)
	require.NoError(f.t, f.Data.Reload())
}

// ScrapeMetrics returns the fixture's metrics in the Prometheus text format.
func (f *TestFixture) ScrapeMetrics() string {
	f.t.Helper()
	rec := httptest.NewRecorder()
	f.Metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(f.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}

// SignalRequest builds a datastar request carrying sig. GET requests put the
// signals in the datastar query parameter, everything else in the body.
func SignalRequest(t *testing.T, method, target string, sig any) *http.Request {
	t.Helper()

	b, err := json.Marshal(sig)
	require.NoError(t, err)

	if method == http.MethodGet {
		u, err := url.Parse(target)
		require.NoError(t, err)
		q := u.Query()
		q.Set("datastar", string(b))
		u.RawQuery = q.Encode()
		req := httptest.NewRequest(method, u.String(), nil)
		req.Header.Set("Datastar-Request", "true")
		return req
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")
	return req
}

// RequestWithTimeout wraps a request with a context timeout that is
// released when the test ends.
func RequestWithTimeout(t *testing.T, r *http.Request, timeout time.Duration) *http.Request {
	t.Helper()
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	t.Cleanup(cancel)
	return r.WithContext(ctx)
}

// WithCookies copies the cookies set on rec onto r.
func WithCookies(r *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func writeData(t *testing.T, path string, pages []TestPage) {
	t.Helper()

	doc := map[string]any{}
	if len(pages) > 0 {
		m := make(map[string]dashdata.Page, len(pages))
		for _, p := range pages {
			m[p.Route] = dashdata.Page{Title: p.Title, Body: p.Body}
		}
		doc["pages"] = m
	}

	b, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0600))
}
