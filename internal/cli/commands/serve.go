package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/shellboard/internal/dashdata"
	"github.com/leapstack-labs/shellboard/internal/ui"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"ui"},
		Short:   "Start the dashboard server",
		Long: `Start a local web server rendering the dashboard shell.

The dashboard provides:
- A collapsible side navigation built from the site config
- A top bar with a light/dark theme toggle
- An overview page with stats, recent activity and quick actions
- Section pages with Markdown bodies from the data file`,
		Example: `  # Start on the default port
  shellboard serve

  # Start on a custom port with a data file, reloading on change
  shellboard serve --port 3000 --data-file dashboard.yaml --watch

  # Start without auto-opening the browser
  shellboard ui --no-browser`,
		RunE: runServe,
	}

	// Values are read through the config loader; defaults live there.
	cmd.Flags().Int("port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().Bool("no-browser", false, "Don't auto-open browser")
	cmd.Flags().Bool("watch", true, "Reload the data file when it changes")
	cmd.Flags().String("data-file", "", "YAML file with stats, activity and page bodies")
	cmd.Flags().Bool("dev", false, "Serve dev-only hot reload endpoints")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	uiCfg := cc.Cfg.UI

	data, err := dashdata.NewStore(uiCfg.DataFile)
	if err != nil {
		return err
	}

	secret, err := sessionSecret(uiCfg.SessionSecret, cc.Logger)
	if err != nil {
		return err
	}

	server := ui.NewServer(ui.Config{
		Registry:        cc.Registry,
		Data:            data,
		Port:            uiCfg.Port,
		Watch:           uiCfg.Watch,
		SessionSecret:   secret,
		ThemeCookie:     uiCfg.ThemeCookie,
		ShutdownTimeout: uiCfg.ShutdownTimeout,
		IsDev:           uiCfg.Dev,
		Logger:          cc.Logger,
	})

	url := fmt.Sprintf("http://localhost:%d", uiCfg.Port)
	if uiCfg.AutoOpen {
		go openBrowser(url)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Starting %s on %s\n", cc.Registry.Name(), url)
	_, _ = fmt.Fprintln(out, "Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(context.Background(), "open", url)
	case "linux":
		cmd = exec.CommandContext(context.Background(), "xdg-open", url)
	case "windows":
		cmd = exec.CommandContext(context.Background(), "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return
	}

	_ = cmd.Start()
}
