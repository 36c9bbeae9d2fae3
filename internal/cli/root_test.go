package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shellboard/internal/cli/testutil"
)

func TestRootCmd_Help(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, NewRootCmd(), "--help")
	require.NoError(t, err)

	for _, want := range []string{"serve", "nav", "version", "completion", "--config"} {
		assert.Contains(t, out, want)
	}
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, NewRootCmd(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "shellboard v"+Version)
}

func TestRootCmd_ConfigFileFeedsNav(t *testing.T) {
	path := testutil.SetupTestProject(t, `
site:
  name: Acme
  nav:
    - label: Home
      destination: /
      icon: LayoutDashboard
    - label: Billing
      destination: /billing
      icon: CreditCard
`)

	out, _, err := testutil.ExecuteCommand(t, NewRootCmd(), "--config", path, "nav", "--route", "/billing", "-o", "json")
	require.NoError(t, err)

	var rows []struct {
		Label  string `json:"label"`
		Glyph  string `json:"glyph"`
		Active bool   `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Billing", rows[1].Label)
	assert.True(t, rows[1].Active)
	assert.False(t, rows[0].Active)
	assert.Equal(t, "layout-dashboard", rows[1].Glyph, "unknown icons use the default glyph")
}

func TestRootCmd_InvalidNavConfig(t *testing.T) {
	path := testutil.SetupTestProject(t, `
site:
  nav:
    - label: Broken
      destination: broken
`)

	_, _, err := testutil.ExecuteCommand(t, NewRootCmd(), "--config", path, "nav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid site navigation")
}

func TestRootCmd_ServeMissingDataFile(t *testing.T) {
	_, _, err := testutil.ExecuteCommand(t, NewRootCmd(),
		"serve", "--no-browser", "--port", "0", "--data-file", t.TempDir()+"/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dashboard data")
}

func TestRootCmd_VerboseLogsConfigFile(t *testing.T) {
	path := testutil.SetupTestProject(t, "site:\n  name: Acme\n")

	_, stderr, err := testutil.ExecuteCommand(t, NewRootCmd(), "-v", "--config", path, "nav", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "using config file")
	assert.Contains(t, stderr, path)
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, NewRootCmd(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "shellboard")

	_, _, err = testutil.ExecuteCommand(t, NewRootCmd(), "completion", "tcsh")
	require.Error(t, err)
}
