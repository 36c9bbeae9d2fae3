// Package dashdata loads the mock content shown on the dashboard: stat
// cards, recent activity, quick actions and section page bodies.
package dashdata

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Format controls how a stat value is displayed.
type Format string

const (
	FormatRaw      Format = "raw"
	FormatNumber   Format = "number"
	FormatCurrency Format = "currency"
	FormatPercent  Format = "percent"
)

// Stat is one overview card.
type Stat struct {
	Label  string  `yaml:"label"`
	Value  float64 `yaml:"value"`
	Format Format  `yaml:"format"`
	Detail string  `yaml:"detail"`
	Icon   string  `yaml:"icon"`
}

var printer = message.NewPrinter(language.English)

// Display formats the value for its card.
func (s Stat) Display() string {
	switch s.Format {
	case FormatCurrency:
		return printer.Sprintf("$%d", int64(math.Round(s.Value)))
	case FormatNumber:
		return printer.Sprintf("%d", int64(math.Round(s.Value)))
	case FormatPercent:
		return printer.Sprintf("%.1f%%", s.Value)
	default:
		return strconv.FormatFloat(s.Value, 'f', -1, 64)
	}
}

// Activity is one row of the recent activity table.
type Activity struct {
	ID      int    `yaml:"id"`
	Action  string `yaml:"action"`
	Project string `yaml:"project"`
	Status  string `yaml:"status"`
	Time    string `yaml:"time"`
}

// QuickAction is one button in the quick actions card.
type QuickAction struct {
	Label   string `yaml:"label"`
	Variant string `yaml:"variant"` // primary, secondary, outline, ghost
}

// Page is the body of a section page, written in Markdown.
type Page struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Data is one snapshot of the dashboard content.
type Data struct {
	Stats        []Stat          `yaml:"stats"`
	Activity     []Activity      `yaml:"activity"`
	QuickActions []QuickAction   `yaml:"quick_actions"`
	Pages        map[string]Page `yaml:"pages"`
}

// Default returns the built-in mock content.
func Default() *Data {
	return &Data{
		Stats: []Stat{
			{Label: "Total Revenue", Value: 45231, Format: FormatCurrency, Detail: "+20.1% from last month", Icon: "TrendingUp"},
			{Label: "Active Users", Value: 2350, Format: FormatNumber, Detail: "+180 this week", Icon: "Users"},
			{Label: "Projects", Value: 12, Format: FormatNumber, Detail: "3 in progress", Icon: "FolderKanban"},
			{Label: "Uptime", Value: 99.9, Format: FormatPercent, Detail: "Last 30 days", Icon: "Activity"},
		},
		Activity: []Activity{
			{ID: 1, Action: "New deployment", Project: "Website Redesign", Status: "success", Time: "2 min ago"},
			{ID: 2, Action: "Build failed", Project: "Mobile App", Status: "error", Time: "15 min ago"},
			{ID: 3, Action: "New member added", Project: "API Gateway", Status: "info", Time: "1 hour ago"},
			{ID: 4, Action: "Release published", Project: "Design System", Status: "success", Time: "3 hours ago"},
			{ID: 5, Action: "Issue reported", Project: "Auth Service", Status: "warning", Time: "5 hours ago"},
		},
		QuickActions: []QuickAction{
			{Label: "New Project", Variant: "primary"},
			{Label: "Invite Member", Variant: "secondary"},
			{Label: "View Reports", Variant: "outline"},
			{Label: "Settings", Variant: "ghost"},
		},
		Pages: map[string]Page{},
	}
}

// Parse decodes a YAML document. Sections missing from the document keep
// their built-in defaults.
func Parse(b []byte) (*Data, error) {
	var raw Data
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse dashboard data: %w", err)
	}

	d := Default()
	if raw.Stats != nil {
		d.Stats = raw.Stats
	}
	if raw.Activity != nil {
		d.Activity = raw.Activity
	}
	if raw.QuickActions != nil {
		d.QuickActions = raw.QuickActions
	}
	if raw.Pages != nil {
		d.Pages = raw.Pages
	}
	return d, nil
}

// Load reads path. An empty path returns Default.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dashboard data %s: %w", path, err)
	}
	return Parse(b)
}
