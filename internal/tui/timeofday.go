package tui

import (
	"fmt"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TimeOfDayModel is the time-of-day screen model
type TimeOfDayModel struct {
	queries *service.QueryService
	units   Units
	bucket  activity.Bucket
	periods []service.TimePeriodStats
}

// NewTimeOfDayModel creates a new time-of-day model
func NewTimeOfDayModel(qs *service.QueryService, units Units) TimeOfDayModel {
	return TimeOfDayModel{
		queries: qs,
		units:   units,
		bucket:  activity.Running,
		periods: qs.GetTimeOfDay(activity.Running),
	}
}

// Init initializes the time-of-day screen
func (m TimeOfDayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m TimeOfDayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if b, ok := bucketForKey(msg.String()); ok && b != m.bucket {
			m.bucket = b
			m.periods = m.queries.GetTimeOfDay(b)
		}
	}
	return m, nil
}

// View renders the time-of-day screen
func (m TimeOfDayModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Time of Day") + "  " + bucketIndicator(m.bucket)
	sections = append(sections, title)

	if len(m.periods) == 0 {
		sections = append(sections, fmt.Sprintf("\n  No %s activities in this export.", m.bucket))
		sections = append(sections, statusStyle.Render("\n  r/c/o: switch sport"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	for _, p := range m.periods {
		row := fmt.Sprintf("%-24s  %4d  %s %5.1f%%",
			p.Period,
			p.Count,
			RenderProgressBar(p.Percent/100, m.units.BarWidth()),
			p.Percent)
		sections = append(sections, tableRowStyle.Render(row))
	}

	help := statusStyle.Render("\n  r/c/o: switch sport")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
