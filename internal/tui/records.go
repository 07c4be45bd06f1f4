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

// RecordsModel is the personal records screen model
type RecordsModel struct {
	queries  *service.QueryService
	units    Units
	bucket   activity.Bucket
	records  service.Records
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewRecordsModel creates a new records model
func NewRecordsModel(qs *service.QueryService, units Units, width, height int) RecordsModel {
	m := RecordsModel{
		queries: qs,
		units:   units,
		bucket:  activity.Running,
		records: qs.GetRecords(activity.Running),
		width:   width,
		height:  height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the records screen
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
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

	case tea.KeyMsg:
		if b, ok := bucketForKey(msg.String()); ok && b != m.bucket {
			m.bucket = b
			m.records = m.queries.GetRecords(b)
			if m.ready {
				m.viewport.SetContent(m.renderContent())
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the records screen
func (m RecordsModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  r/c/o: switch sport  j/k or arrows: scroll")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m RecordsModel) renderContent() string {
	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render("Personal Records")+"  "+bucketIndicator(m.bucket))
	sections = append(sections, "")

	if m.records.Longest == nil {
		sections = append(sections, mutedStyle.Render(fmt.Sprintf("  No %s activities in this export.", m.bucket)))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, m.renderRecord("Longest "+m.bucket.String(), m.records.Longest,
		m.units.FormatDistance(m.records.Longest.Value)))

	if r := m.records.FastestSpeed; r != nil {
		sections = append(sections, m.renderRecord("Fastest Average Speed", r,
			fmt.Sprintf("%.1f km/h", r.Value)))
	}
	if r := m.records.SteepestGrade; r != nil {
		sections = append(sections, m.renderRecord("Steepest Grade", r,
			fmt.Sprintf("%.1f%%", r.Value)))
	}
	if r := m.records.BestPace; r != nil {
		sections = append(sections, m.renderRecord("Best Pace", r,
			service.FormatPace(r.Value)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m RecordsModel) renderRecord(title string, rec *service.Record, value string) string {
	var lines []string

	lines = append(lines, m.sectionHeader(title))

	a := rec.Activity
	lines = append(lines, fmt.Sprintf("  %s", truncateName(a.Name, 48)))
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %s, %s", a.StartTime.Format("January 2, 2006"), a.Type)))
	lines = append(lines, metricValueStyle.Render(fmt.Sprintf("  %s", value)))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func (m RecordsModel) sectionHeader(title string) string {
	dividerLen := 56 - len([]rune(title))
	if dividerLen < 0 {
		dividerLen = 0
	}
	divider := strings.Repeat("─", dividerLen)
	return sectionTitleStyle.Render(fmt.Sprintf("── %s %s", title, divider))
}
