package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/ui/icons"
)

// Output formats accepted by --output.
const (
	OutputAuto     = "auto"
	OutputTable    = "table"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
)

// NavRow is one navigation entry as printed by the nav command.
type NavRow struct {
	Label        string `json:"label"`
	Destination  string `json:"destination"`
	Icon         string `json:"icon"`
	Glyph        string `json:"glyph"`
	DefaultGlyph bool   `json:"default_glyph"` // Icon has no glyph of its own
	Active       bool   `json:"active"`
}

// NewNavCommand creates the nav command.
func NewNavCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nav",
		Short: "List the navigation entries",
		Long: `List the side panel entries in order, with the glyph each icon
resolves to and whether the entry is active for --route.`,
		Example: `  # Show which entry /projects highlights
  shellboard nav --route /projects

  # Machine-readable output
  shellboard nav -o json`,
		RunE: runNav,
	}

	cmd.Flags().String("route", "/", "Current route used for active highlighting")
	cmd.Flags().StringP("output", "o", OutputAuto, "Output format (auto|table|markdown|json)")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{OutputAuto, OutputTable, OutputMarkdown, OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runNav(cmd *cobra.Command, _ []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	route, _ := cmd.Flags().GetString("route")
	format, _ := cmd.Flags().GetString("output")

	rows := navRows(cc.Registry, route)
	return writeNav(cmd.OutOrStdout(), rows, resolveFormat(format, cmd.OutOrStdout()))
}

// navRows lists reg in order with each entry's active state for route.
func navRows(reg nav.Registry, route string) []NavRow {
	items := reg.Items()
	active := make(map[int]bool, 1)
	for _, i := range reg.Active(route) {
		active[i] = true
	}
	rows := make([]NavRow, 0, len(items))
	for i, item := range items {
		rows = append(rows, NavRow{
			Label:        item.Label,
			Destination:  item.Destination,
			Icon:         string(item.Icon),
			Glyph:        icons.Name(item.Icon),
			DefaultGlyph: !item.Icon.Known(),
			Active:       active[i],
		})
	}
	return rows
}

// resolveFormat picks table for terminals and markdown for pipes in auto mode.
func resolveFormat(format string, w io.Writer) string {
	if format != OutputAuto && format != "" {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return OutputTable
	}
	return OutputMarkdown
}

func writeNav(w io.Writer, rows []NavRow, format string) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case OutputTable, OutputMarkdown:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"#", "Label", "Destination", "Icon", "Active"})
		for i, r := range rows {
			active := ""
			if r.Active {
				active = "*"
			}
			t.AppendRow(table.Row{i + 1, r.Label, r.Destination, r.Glyph, active})
		}
		if format == OutputMarkdown {
			t.RenderMarkdown()
			return nil
		}
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want auto, table, markdown or json)", format)
	}
}
