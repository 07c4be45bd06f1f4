package tui

import (
	"fmt"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WeeklyModel is the weekly patterns screen model
type WeeklyModel struct {
	queries *service.QueryService
	units   Units
	bucket  activity.Bucket
	pattern service.WeeklyPattern
}

// NewWeeklyModel creates a new weekly patterns model
func NewWeeklyModel(qs *service.QueryService, units Units) WeeklyModel {
	return WeeklyModel{
		queries: qs,
		units:   units,
		bucket:  activity.Running,
		pattern: qs.GetWeeklyPattern(activity.Running),
	}
}

// Init initializes the weekly screen
func (m WeeklyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m WeeklyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if b, ok := bucketForKey(msg.String()); ok && b != m.bucket {
			m.bucket = b
			m.pattern = m.queries.GetWeeklyPattern(b)
		}
	}
	return m, nil
}

// View renders the weekly patterns screen
func (m WeeklyModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Weekly Patterns") + "  " + bucketIndicator(m.bucket)
	sections = append(sections, title)

	p := m.pattern
	if p.FavoriteDay == "" {
		sections = append(sections, fmt.Sprintf("\n  No %s activities in this export.", m.bucket))
		sections = append(sections, statusStyle.Render("\n  r/c/o: switch sport"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	maxCount := 0
	for _, d := range p.Days {
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}

	label := m.units.DistanceLabel()
	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %5s  %9s  %8s  %s",
		"Day", "Count", "Total "+label, "Avg "+label, ""))
	sections = append(sections, header)

	for _, d := range p.Days {
		row := fmt.Sprintf("%-10s  %5d  %9s  %8s  %s",
			d.Day,
			d.Count,
			m.units.FormatDistanceValue(d.TotalDistanceKM),
			m.units.FormatDistanceValue(d.AvgDistanceKM),
			RenderCountBar(d.Count, maxCount, 20))
		sections = append(sections, tableRowStyle.Render(row))
	}

	favorite := successStyle.Render(fmt.Sprintf("\n  Favorite day: %s (%d activities)", p.FavoriteDay, p.FavoriteCount))
	sections = append(sections, favorite)

	help := statusStyle.Render("\n  r/c/o: switch sport")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
