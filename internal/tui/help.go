package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Overview"},
		{"2", "Detailed statistics"},
		{"3", "Weekly patterns"},
		{"4", "Time of day"},
		{"5", "Personal records"},
		{"6", "Gear usage"},
		{"7", "Monthly activity"},
		{"8", "Running vs cycling"},
		{"9", "Browse activities"},
		{"?", "Help (this screen)"},
		{"esc", "Back"},
		{"q", "Quit"},
	})
	sections = append(sections, navSection)

	sportSection := m.renderSection("Sport Screens", []keyHelp{
		{"r", "Show running"},
		{"c", "Show cycling"},
		{"o", "Show everything else"},
	})
	sections = append(sections, sportSection)

	browseSection := m.renderSection("Activities Browser", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"pgdn / pgup", "Page"},
		{"g", "Jump to the top"},
		{"enter", "Activity details"},
	})
	sections = append(sections, browseSection)

	metricsSection := m.renderMetricsHelp()
	sections = append(sections, metricsSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderMetricsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render("Reading the Numbers"))
	lines = append(lines, "")

	metrics := []struct {
		name string
		desc string
	}{
		{"Pace", "Moving time per km, truncated to whole seconds. Runs only."},
		{"Best pace", "Lowest pace across runs that have one recorded."},
		{"Commutes", "Activities flagged as commutes in the export."},
		{"Avg grade", "Can be negative on net-downhill activities."},
		{"Monthly bars", "Scaled against each sport's busiest month."},
	}

	for _, metric := range metrics {
		lines = append(lines, "  "+helpKeyStyle.Render(metric.name))
		lines = append(lines, "  "+mutedStyle.Render(metric.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
