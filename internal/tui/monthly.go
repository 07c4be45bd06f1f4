package tui

import (
	"fmt"

	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MonthlyModel is the monthly pattern screen model
type MonthlyModel struct {
	queries *service.QueryService
	units   Units
	pattern service.MonthlyPattern
}

// NewMonthlyModel creates a new monthly pattern model
func NewMonthlyModel(qs *service.QueryService, units Units) MonthlyModel {
	return MonthlyModel{
		queries: qs,
		units:   units,
		pattern: qs.GetMonthlyPattern(),
	}
}

// Init initializes the monthly screen
func (m MonthlyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m MonthlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the monthly pattern screen
func (m MonthlyModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Monthly Activity")
	sections = append(sections, title)

	if len(m.pattern.Series) == 0 {
		sections = append(sections, "\n  No activities in this export.")
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	for _, series := range m.pattern.Series {
		sections = append(sections, "")
		sections = append(sections, sectionTitleStyle.Render(series.Bucket.String()))

		max := 0
		for _, month := range series.Months {
			if month.Count > max {
				max = month.Count
			}
		}

		for _, month := range series.Months {
			row := fmt.Sprintf("%-9s %s %d",
				month.Label,
				RenderCountBar(month.Count, max, m.units.BarWidth()),
				month.Count)
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	span := len(m.pattern.Window)
	help := statusStyle.Render(fmt.Sprintf("\n  Showing the last %d active months", span))
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
