package sections

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shellboard/internal/ui/features"
)

func setupTestRouter(t *testing.T, pages ...features.TestPage) (chi.Router, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t, pages...)
	router := chi.NewRouter()
	_, err := SetupRoutes(router, fixture.Deps)
	require.NoError(t, err)

	return router, fixture
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// activeLabel returns the label of the single active navigation row.
func activeLabel(t *testing.T, body string) string {
	t.Helper()
	require.Equal(t, 1, strings.Count(body, `aria-current="page"`))
	row := body[strings.Index(body, `aria-current="page"`):]
	row = row[:strings.Index(row, "</a>")]
	return row[strings.LastIndex(row, ">")+1:]
}

func TestSectionPage(t *testing.T) {
	tests := []struct {
		path       string
		wantTitle  string
		wantActive string
	}{
		{"/projects", "<title>Projects - My App</title>", "Projects"},
		{"/team", "<title>Team - My App</title>", "Team"},
		{"/analytics", "<title>Analytics - My App</title>", "Analytics"},
		{"/settings", "<title>Settings - My App</title>", "Settings"},
	}

	router, _ := setupTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(router, tt.path)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.wantTitle)
			assert.Contains(t, body, emptyState)
			assert.Equal(t, tt.wantActive, activeLabel(t, body))
		})
	}
}

func TestSectionPage_MarkdownBody(t *testing.T) {
	router, _ := setupTestRouter(t, features.TestPage{
		Route: "/team",
		Title: "Our Team",
		Body:  "## People\n\n- Ada\n- Grace\n\n<script>alert(1)</script>",
	})

	rec := get(router, "/team")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<title>Our Team - My App</title>")
	assert.Contains(t, body, `<h2 id="people">People</h2>`)
	assert.Contains(t, body, "<li>Ada</li>")
	assert.NotContains(t, body, "<script>alert(1)</script>", "raw HTML is not passed through")
	assert.NotContains(t, body, emptyState)
}

func TestNotFound(t *testing.T) {
	router, fixture := setupTestRouter(t)

	rec := get(router, "/does-not-exist")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Not Found - My App</title>")
	assert.Contains(t, body, "/does-not-exist")
	assert.Contains(t, body, `id="sidebar"`, "404 renders inside the shell")
	assert.NotContains(t, body, `aria-current="page"`, "no row is active on an unknown route")
	assert.Contains(t, fixture.ScrapeMetrics(), `shellboard_page_renders_total{route="not_found"} 1`)
}

func TestSetupRoutes_SkipsRoot(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Without the home feature "/" reaches the not-found handler, which
	// still finds it in the registry and renders the Dashboard section.
	rec := get(router, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Dashboard - My App</title>")
}

func TestResolve_UnknownRoute(t *testing.T) {
	h := NewHandlers(features.SetupTestFixture(t).Deps)

	v := h.Resolve("/missing")
	assert.Equal(t, http.StatusNotFound, v.Status)
	assert.Equal(t, NotFoundTitle, v.Title)
}
