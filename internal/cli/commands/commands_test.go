package commands

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shellboard/internal/cli/config"
	"github.com/leapstack-labs/shellboard/internal/cli/testutil"
	"github.com/leapstack-labs/shellboard/internal/nav"
)

func TestNavCommand_JSON(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, NewNavCommand(), "--route", "/projects", "-o", "json")
	require.NoError(t, err)

	var rows []NavRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, nav.Default().Len())

	var active []string
	for _, r := range rows {
		if r.Active {
			active = append(active, r.Label)
		}
	}
	assert.Equal(t, []string{"Projects"}, active)
	assert.Equal(t, "folder-kanban", rows[1].Glyph)
	assert.False(t, rows[1].DefaultGlyph)
}

func TestNavCommand_AutoIsMarkdownWhenPiped(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, NewNavCommand())
	require.NoError(t, err)

	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "| 1 ")
	assert.Contains(t, out, "Dashboard")
	assert.Equal(t, 1, strings.Count(out, "| * |"), "only the root entry is active for /")
}

func TestNavCommand_Table(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, NewNavCommand(), "-o", "table", "--route", "/unknown")
	require.NoError(t, err)

	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "Analytics")
	assert.NotContains(t, out, "*", "no entry matches an unknown route")
}

func TestNavCommand_UnknownFormat(t *testing.T) {
	_, _, err := testutil.ExecuteCommand(t, NewNavCommand(), "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestNavRows_UnknownIcon(t *testing.T) {
	reg := nav.New("x", "", "", []nav.Item{{Label: "Odd", Destination: "/odd", Icon: "Nope"}})

	rows := navRows(reg, "/odd")
	require.Len(t, rows, 1)
	assert.Equal(t, "Nope", rows[0].Icon)
	assert.Equal(t, "layout-dashboard", rows[0].Glyph)
	assert.True(t, rows[0].DefaultGlyph)
	assert.True(t, rows[0].Active)
}

func TestBuildRegistry(t *testing.T) {
	reg, err := buildRegistry(config.Default().Site)
	require.NoError(t, err)
	assert.Equal(t, nav.Default().Items(), reg.Items())

	_, err = buildRegistry(config.SiteConfig{
		Name: "x",
		Nav:  []config.NavItemConfig{{Label: "Bad", Destination: "bad"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, nav.ErrInvalidDestination)

	_, err = buildRegistry(config.SiteConfig{
		Name: "x",
		Nav:  []config.NavItemConfig{{Label: "Reports", Destination: "/reports/{id", Icon: "BarChart3"}},
	})
	assert.ErrorIs(t, err, nav.ErrInvalidDestination)
}

func TestSessionSecret(t *testing.T) {
	s, err := sessionSecret("configured", nil)
	require.NoError(t, err)
	assert.Equal(t, "configured", s)

	logger := config.GetLogger(t.Context())
	a, err := sessionSecret("", logger)
	require.NoError(t, err)
	b, err := sessionSecret("", logger)
	require.NoError(t, err)

	raw, err := hex.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
	assert.NotEqual(t, a, b)
}

func TestServeCommandMetadata(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.Contains(t, cmd.Aliases, "ui")
	for _, name := range []string{"port", "no-browser", "watch", "data-file", "dev"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}
