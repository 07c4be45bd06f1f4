package tui

import (
	"fmt"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ComparisonModel is the running vs cycling screen model
type ComparisonModel struct {
	queries    *service.QueryService
	units      Units
	comparison *service.Comparison
	err        error
}

// NewComparisonModel creates a new comparison model
func NewComparisonModel(qs *service.QueryService, units Units) ComparisonModel {
	c, err := qs.GetComparison()
	return ComparisonModel{
		queries:    qs,
		units:      units,
		comparison: c,
		err:        err,
	}
}

// Init initializes the comparison screen
func (m ComparisonModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ComparisonModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the comparison screen
func (m ComparisonModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Running vs Cycling")
	sections = append(sections, title)

	if m.err != nil {
		sections = append(sections, "\n  Need at least one run and one ride to compare.")
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	c := m.comparison
	header := tableHeaderStyle.Render(fmt.Sprintf("%-16s  %14s  %14s", "", "Running", "Cycling"))
	sections = append(sections, header)

	rows := []string{
		m.renderRow("Activities", fmt.Sprintf("%d", c.Running.Count), fmt.Sprintf("%d", c.Cycling.Count)),
		m.renderRow("Share", fmt.Sprintf("%.1f%%", c.Running.CountPercent), fmt.Sprintf("%.1f%%", c.Cycling.CountPercent)),
		m.renderRow("Distance", m.units.FormatDistance(c.Running.DistanceKM), m.units.FormatDistance(c.Cycling.DistanceKM)),
		m.renderRow("Distance share", fmt.Sprintf("%.1f%%", c.Running.DistancePercent), fmt.Sprintf("%.1f%%", c.Cycling.DistancePercent)),
		m.renderRow("Avg distance", m.units.FormatDistance(c.Running.AvgDistanceKM), m.units.FormatDistance(c.Cycling.AvgDistanceKM)),
		m.renderRow("Moving time", formatHours(c.Running.MovingHours), formatHours(c.Cycling.MovingHours)),
	}
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, rows...))

	sections = append(sections, successStyle.Render("\n  "+m.summaryLine()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ComparisonModel) renderRow(label, running, cycling string) string {
	return tableRowStyle.Render(fmt.Sprintf("%-16s  %14s  %14s", label, running, cycling))
}

func (m ComparisonModel) summaryLine() string {
	c := m.comparison
	switch c.LongerSport {
	case activity.Running.String():
		return fmt.Sprintf("The average run is %.1fx longer than the average ride.", c.DistanceRatio)
	case activity.Cycling.String():
		return fmt.Sprintf("The average ride is %.1fx longer than the average run.", c.DistanceRatio)
	default:
		return "Average distances are about the same."
	}
}
