package tui

import (
	"fmt"
	"strings"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailModel is the single-activity detail screen model
type DetailModel struct {
	activity activity.Activity
	units    Units
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewDetailModel creates a detail model for one activity
func NewDetailModel(a activity.Activity, units Units, width, height int) DetailModel {
	m := DetailModel{
		activity: a,
		units:    units,
		width:    width,
		height:   height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  esc: back to list  j/k or arrows: scroll")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m DetailModel) renderContent() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderEffort())
	sections = append(sections, m.renderTerrain())
	sections = append(sections, m.renderLogistics())

	if m.activity.Description != "" {
		sections = append(sections, m.renderDescription())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DetailModel) renderHeader() string {
	a := m.activity
	title := cardTitleStyle.Render(a.Name)

	date := a.StartTime.Format("Monday, January 2, 2006 at 3:04 PM")
	subtitle := mutedStyle.Render(date)

	stats := fmt.Sprintf("%s  •  %s  •  %s",
		m.units.FormatDistance(a.DistanceKM),
		formatDuration(a.MovingSeconds),
		service.FormatPace(a.PaceMinPerKM))
	statsLine := lipgloss.NewStyle().Foreground(textColor).Bold(true).Render(stats)

	return lipgloss.JoinVertical(lipgloss.Left, "", title, subtitle, statsLine, "")
}

func (m DetailModel) renderEffort() string {
	a := m.activity
	var lines []string

	lines = append(lines, sectionTitleStyle.Render("Effort"))
	lines = append(lines, fmt.Sprintf("  Moving time:      %s", formatDuration(a.MovingSeconds)))
	lines = append(lines, fmt.Sprintf("  Elapsed time:     %s", formatDuration(a.ElapsedSeconds)))
	lines = append(lines, fmt.Sprintf("  Avg speed:        %s", formatSpeed(a.AvgSpeedKMH)))
	lines = append(lines, fmt.Sprintf("  Max speed:        %s", formatSpeed(a.MaxSpeedKMH)))
	if a.MaxHeartRate > 0 {
		lines = append(lines, fmt.Sprintf("  Max HR:           %.0f bpm", a.MaxHeartRate))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m DetailModel) renderTerrain() string {
	a := m.activity
	var lines []string

	lines = append(lines, sectionTitleStyle.Render("Terrain"))
	if a.ElevationLow != 0 || a.ElevationHigh != 0 {
		lines = append(lines, fmt.Sprintf("  Elevation:        %.0f m to %.0f m", a.ElevationLow, a.ElevationHigh))
	}
	lines = append(lines, fmt.Sprintf("  Max grade:        %s", formatGradePct(a.MaxGrade)))
	lines = append(lines, fmt.Sprintf("  Avg grade:        %s", formatAvgGrade(a.AvgGrade)))

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m DetailModel) renderLogistics() string {
	a := m.activity
	var lines []string

	lines = append(lines, sectionTitleStyle.Render("Logistics"))
	lines = append(lines, fmt.Sprintf("  Sport:            %s (%s)", a.Type, activity.Categorize(a.Type)))
	lines = append(lines, fmt.Sprintf("  Day:              %s", a.DayOfWeek))

	gear := a.Gear
	if gear == "" {
		gear = service.NoGearLabel
	}
	lines = append(lines, fmt.Sprintf("  Gear:             %s", gear))

	if a.Commute {
		lines = append(lines, "  Commute:          yes")
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m DetailModel) renderDescription() string {
	var lines []string

	lines = append(lines, sectionTitleStyle.Render("Description"))
	for _, line := range strings.Split(m.activity.Description, "\n") {
		lines = append(lines, "  "+line)
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
