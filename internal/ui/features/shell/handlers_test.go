package shell

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shellboard/internal/ui/features"
	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	layout "github.com/leapstack-labs/shellboard/internal/ui/shell"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	return NewHandlers(fixture.Deps), fixture
}

func post(t *testing.T, handler http.HandlerFunc, target string, sig common.Signals) string {
	t.Helper()
	rec := httptest.NewRecorder()
	handler(rec, features.SignalRequest(t, http.MethodPost, target, sig))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestOpen(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	body := post(t, h.Open, layout.OpenPath, common.Signals{Route: "/team"})

	assert.Equal(t, 2, strings.Count(body, "event:"), "panel patch and signal patch")
	assert.Contains(t, body, `id="sidebar"`)
	assert.Contains(t, body, "data-overlay")
	assert.Contains(t, body, `"sidebarOpen":true`)
	assert.Contains(t, fixture.ScrapeMetrics(), `shellboard_shell_transitions_total{action="open",changed="true"} 1`)
}

func TestOpen_AlreadyOpenIsNoop(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	body := post(t, h.Open, layout.OpenPath, common.Signals{SidebarOpen: true, Route: "/"})

	assert.Equal(t, 0, strings.Count(body, "event:"))
	assert.Contains(t, fixture.ScrapeMetrics(), `shellboard_shell_transitions_total{action="open",changed="false"} 1`)
}

func TestClose(t *testing.T) {
	h, _ := setupTestHandlers(t)

	body := post(t, h.Close, layout.ClosePath, common.Signals{SidebarOpen: true, Route: "/team"})

	assert.Equal(t, 2, strings.Count(body, "event:"))
	assert.Contains(t, body, `id="sidebar"`)
	assert.NotContains(t, body, "data-overlay", "closed panel has no overlay")
	assert.Contains(t, body, "-translate-x-full")
	assert.Contains(t, body, `"sidebarOpen":false`)
	assert.NotContains(t, body, "window.location", "dismissing never navigates")
}

func TestClose_OnClosedIsNoop(t *testing.T) {
	h, _ := setupTestHandlers(t)

	body := post(t, h.Close, layout.ClosePath, common.Signals{Route: "/"})

	assert.Empty(t, strings.TrimSpace(body))
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name       string
		open       bool
		wantEvents int
	}{
		{"from open panel", true, 3},
		{"from closed panel", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupTestHandlers(t)

			body := post(t, h.Navigate, layout.NavigatePath+"?to=%2Fanalytics", common.Signals{SidebarOpen: tt.open, Route: "/"})

			assert.Equal(t, tt.wantEvents, strings.Count(body, "event:"))
			redirect := strings.Index(body, "window.location")
			require.GreaterOrEqual(t, redirect, 0, "navigation ends with a redirect")
			assert.Contains(t, body[redirect:], "/analytics")

			if tt.open {
				panel := strings.Index(body, `id="sidebar"`)
				require.GreaterOrEqual(t, panel, 0)
				assert.Less(t, panel, redirect, "panel closes before the redirect")
				assert.Contains(t, body, `"sidebarOpen":false`)
			}
		})
	}
}

func TestNavigate_UnknownDestination(t *testing.T) {
	h, _ := setupTestHandlers(t)

	body := post(t, h.Navigate, layout.NavigatePath+"?to=%2Fnowhere", common.Signals{SidebarOpen: true})

	assert.Contains(t, body, "console.error")
	assert.NotContains(t, body, "window.location")
	assert.NotContains(t, body, `id="sidebar"`)
}

func TestTransition_BadSignals(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, layout.OpenPath, strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Open(rec, req)

	assert.Contains(t, rec.Body.String(), "console.error")
}
