package tui

import (
	"fmt"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GearModel is the gear usage screen model
type GearModel struct {
	queries *service.QueryService
	units   Units
	bucket  activity.Bucket
	gear    []service.GearStats
}

// NewGearModel creates a new gear model
func NewGearModel(qs *service.QueryService, units Units) GearModel {
	return GearModel{
		queries: qs,
		units:   units,
		bucket:  activity.Running,
		gear:    qs.GetGearUsage(activity.Running),
	}
}

// Init initializes the gear screen
func (m GearModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m GearModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if b, ok := bucketForKey(msg.String()); ok && b != m.bucket {
			m.bucket = b
			m.gear = m.queries.GetGearUsage(b)
		}
	}
	return m, nil
}

// View renders the gear screen
func (m GearModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Gear Usage") + "  " + bucketIndicator(m.bucket)
	sections = append(sections, title)

	if len(m.gear) == 0 {
		sections = append(sections, fmt.Sprintf("\n  No gear recorded on %s activities.", m.bucket))
		sections = append(sections, statusStyle.Render("\n  r/c/o: switch sport"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	label := m.units.DistanceLabel()
	header := tableHeaderStyle.Render(fmt.Sprintf("%-28s  %5s  %9s  %8s",
		"Gear", "Count", "Total "+label, "Avg "+label))
	sections = append(sections, header)

	for _, g := range m.gear {
		row := fmt.Sprintf("%-28s  %5d  %9s  %8s",
			truncateName(g.Name, 28),
			g.Count,
			m.units.FormatDistanceValue(g.TotalDistanceKM),
			m.units.FormatDistanceValue(g.AvgDistanceKM))
		sections = append(sections, tableRowStyle.Render(row))
	}

	help := statusStyle.Render("\n  r/c/o: switch sport")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
