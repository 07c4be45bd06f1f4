package tui

import (
	"fmt"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ActivitiesModel is the activities browser screen model
type ActivitiesModel struct {
	queries  *service.QueryService
	units    Units
	rows     activity.Collection
	cursor   int
	offset   int
	pageSize int
}

// NewActivitiesModel creates a new activities browser
func NewActivitiesModel(qs *service.QueryService, units Units) ActivitiesModel {
	return ActivitiesModel{
		queries:  qs,
		units:    units,
		rows:     qs.All(),
		pageSize: 15,
	}
}

// Init initializes the activities screen
func (m ActivitiesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ActivitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
			}
		case "down", "j":
			if m.cursor < m.visibleCount()-1 {
				m.cursor++
			} else if m.offset+m.pageSize < len(m.rows) {
				m.offset += m.pageSize
				m.cursor = 0
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
			}
		case "pgdown":
			if m.offset+m.pageSize < len(m.rows) {
				m.offset += m.pageSize
				m.cursor = 0
			}
		case "g":
			m.offset = 0
			m.cursor = 0
		case "enter":
			if idx := m.offset + m.cursor; idx < len(m.rows) {
				selected := m.rows[idx]
				return m, func() tea.Msg {
					return OpenActivityDetailMsg{Activity: selected}
				}
			}
		}
	}
	return m, nil
}

func (m ActivitiesModel) visibleCount() int {
	remaining := len(m.rows) - m.offset
	if remaining > m.pageSize {
		return m.pageSize
	}
	return remaining
}

// View renders the activities browser
func (m ActivitiesModel) View() string {
	if len(m.rows) == 0 {
		return "\n  No activities in this export."
	}

	var sections []string

	startNum := m.offset + 1
	endNum := m.offset + m.visibleCount()
	title := cardTitleStyle.Render(fmt.Sprintf("Activities (%d-%d of %d)", startNum, endNum, len(m.rows)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-11s  %-24s  %-7s  %8s  %6s  %5s",
		"Date", "Name", "Sport", "Dist "+m.units.DistanceLabel(), "Time", "Pace"))
	sections = append(sections, header)

	for i := m.offset; i < m.offset+m.visibleCount(); i++ {
		a := m.rows[i]

		pace := "-"
		if a.PaceMinPerKM > 0 {
			mins := int(a.PaceMinPerKM)
			secs := int((a.PaceMinPerKM - float64(mins)) * 60)
			pace = fmt.Sprintf("%d:%02d", mins, secs)
		}

		cursor := "  "
		if i-m.offset == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-11s  %-24s  %-7s  %8s  %6s  %5s",
			cursor,
			a.StartTime.Format("Jan 02 2006"),
			truncateName(a.Name, 24),
			activity.Categorize(a.Type),
			m.units.FormatDistanceValue(a.DistanceKM),
			formatDuration(a.MovingSeconds),
			pace)

		if i-m.offset == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	help := statusStyle.Render("\n  enter: details  j/k: navigate  pgup/pgdn: page  g: top")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
