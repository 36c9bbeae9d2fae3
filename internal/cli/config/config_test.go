package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func serveFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.Int("port", 0, "")
	fs.Bool("watch", false, "")
	fs.Bool("no-browser", false, "")
	fs.String("data-file", "", "")
	fs.Bool("dev", false, "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "shellboard.yaml"), `
ui:
  port: 9000
  shutdown_timeout: 250ms
  data_file: dashboard.yaml
site:
  name: Acme
  nav:
    - label: Home
      destination: /
      icon: LayoutDashboard
    - label: Billing
      destination: /billing
      icon: Receipt
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "shellboard.yaml", cfg.ConfigFile)
	assert.Equal(t, 9000, cfg.UI.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.ShutdownTimeout)
	assert.Equal(t, "dashboard.yaml", cfg.UI.DataFile)
	assert.True(t, cfg.UI.AutoOpen, "unset keys keep their defaults")
	assert.Equal(t, "Acme", cfg.Site.Name)
	require.Len(t, cfg.Site.Nav, 2)
	assert.Equal(t, NavItemConfig{Label: "Billing", Destination: "/billing", Icon: "Receipt"}, cfg.Site.Nav[1])
}

func TestLoad_ExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yml")
	writeFile(t, path, "site:\n  title: Custom\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "Custom", cfg.Site.Title)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "shellboard.yaml"), "ui:\n  port: 9000\n  watch: false\n")
	t.Setenv("SHELLBOARD_UI__PORT", "9100")
	t.Setenv("SHELLBOARD_UI__THEME_COOKIE", "env_theme")

	flags := serveFlags()
	require.NoError(t, flags.Parse([]string{"--port", "9200", "--no-browser"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.UI.Port, "flag beats env and file")
	assert.Equal(t, "env_theme", cfg.UI.ThemeCookie, "env beats default")
	assert.False(t, cfg.UI.Watch, "file beats default")
	assert.False(t, cfg.UI.AutoOpen, "--no-browser turns auto_open off")
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "shellboard.yaml"), "ui:\n  port: 9000\n")

	flags := serveFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.UI.Port)
	assert.True(t, cfg.UI.AutoOpen)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "shellboard.yaml"), "ui:\n  port: 70000\n  session_secret: short\n")

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.port out of range")
	assert.Contains(t, err.Error(), "ui.session_secret")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative port", func(c *Config) { c.UI.Port = -1 }, "ui.port"},
		{"negative timeout", func(c *Config) { c.UI.ShutdownTimeout = -time.Second }, "ui.shutdown_timeout"},
		{"empty cookie", func(c *Config) { c.UI.ThemeCookie = " " }, "ui.theme_cookie"},
		{"empty site name", func(c *Config) { c.Site.Name = "" }, "site.name"},
		{"long secret", func(c *Config) { c.UI.SessionSecret = "0123456789abcdef0123456789abcdef" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetLogger_Fallback(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := Default()
	cfg.Site.Name = "Acme"
	assert.Equal(t, "Acme", FromContext(WithConfig(context.Background(), cfg)).Site.Name)
}

func TestLoad_Dev(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Run("env", func(t *testing.T) {
		t.Setenv("SHELLBOARD_UI__DEV", "true")
		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.True(t, cfg.UI.Dev)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(dir, "dev.yaml")
		writeFile(t, path, "ui:\n  dev: true\n")
		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.True(t, cfg.UI.Dev)
	})

	t.Run("flag", func(t *testing.T) {
		flags := serveFlags()
		require.NoError(t, flags.Parse([]string{"--dev"}))
		cfg, err := Load("", flags)
		require.NoError(t, err)
		assert.True(t, cfg.UI.Dev)
	})
}
