package dashdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStat_Display(t *testing.T) {
	tests := []struct {
		name string
		stat Stat
		want string
	}{
		{"currency", Stat{Value: 45231, Format: FormatCurrency}, "$45,231"},
		{"currency rounds", Stat{Value: 1999.6, Format: FormatCurrency}, "$2,000"},
		{"number", Stat{Value: 2350, Format: FormatNumber}, "2,350"},
		{"small number", Stat{Value: 12, Format: FormatNumber}, "12"},
		{"percent", Stat{Value: 99.9, Format: FormatPercent}, "99.9%"},
		{"raw", Stat{Value: 3.25, Format: FormatRaw}, "3.25"},
		{"unset format is raw", Stat{Value: 7}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stat.Display())
		})
	}
}

func TestDefault(t *testing.T) {
	d := Default()

	require.Len(t, d.Stats, 4)
	assert.Equal(t, "$45,231", d.Stats[0].Display())
	require.Len(t, d.Activity, 5)
	assert.Equal(t, "Build failed", d.Activity[1].Action)
	assert.Len(t, d.QuickActions, 4)
	assert.NotNil(t, d.Pages)
}

func TestParse(t *testing.T) {
	doc := `
stats:
  - label: Signups
    value: 1200
    format: number
    detail: today
    icon: Users
pages:
  /projects:
    title: Projects
    body: "# Projects\n\nAll of them."
`
	d, err := Parse([]byte(doc))
	require.NoError(t, err)

	require.Len(t, d.Stats, 1)
	assert.Equal(t, "1,200", d.Stats[0].Display())
	assert.Len(t, d.Activity, 5, "missing sections keep their defaults")
	assert.Equal(t, "Projects", d.Pages["/projects"].Title)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("stats: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dashboard data")
}

func TestLoad(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), d)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestStore_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activity:\n  - id: 1\n    action: First\n"), 0600))

	s, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	require.Len(t, s.Snapshot().Activity, 1)
	assert.Equal(t, "First", s.Snapshot().Activity[0].Action)

	require.NoError(t, os.WriteFile(path, []byte("activity:\n  - id: 1\n    action: Second\n  - id: 2\n    action: Third\n"), 0600))
	require.NoError(t, s.Reload())
	assert.Len(t, s.Snapshot().Activity, 2)

	// A broken file keeps the last good snapshot.
	require.NoError(t, os.WriteFile(path, []byte("activity: ["), 0600))
	require.Error(t, s.Reload())
	assert.Equal(t, "Second", s.Snapshot().Activity[0].Action)
}

func TestStaticStore(t *testing.T) {
	s := NewStaticStore(nil)
	assert.Empty(t, s.Path())
	require.NoError(t, s.Reload())
	assert.Equal(t, Default(), s.Snapshot())
}
