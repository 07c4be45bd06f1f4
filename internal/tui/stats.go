package tui

import (
	"fmt"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatsModel is the detailed statistics screen model
type StatsModel struct {
	queries *service.QueryService
	units   Units
	bucket  activity.Bucket
	stats   service.SummaryStats
}

// NewStatsModel creates a new stats model
func NewStatsModel(qs *service.QueryService, units Units) StatsModel {
	return StatsModel{
		queries: qs,
		units:   units,
		bucket:  activity.Running,
		stats:   qs.GetSummary(activity.Running),
	}
}

// Init initializes the stats screen
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if b, ok := bucketForKey(msg.String()); ok && b != m.bucket {
			m.bucket = b
			m.stats = m.queries.GetSummary(b)
		}
	}
	return m, nil
}

// View renders the stats screen
func (m StatsModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Detailed Statistics") + "  " + bucketIndicator(m.bucket)
	sections = append(sections, title)

	s := m.stats
	if s.Count == 0 {
		sections = append(sections, fmt.Sprintf("\n  No %s activities in this export.", m.bucket))
		sections = append(sections, statusStyle.Render("\n  r/c/o: switch sport"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	volume := []string{
		sectionTitleStyle.Render("Volume"),
		RenderMetric("Activities", fmt.Sprintf("%d", s.Count)),
		RenderMetric("Commutes", fmt.Sprintf("%d (%.1f%%)", s.CommuteCount, s.CommutePercent)),
		RenderMetric("Total distance", m.units.FormatDistance(s.TotalDistanceKM)),
		RenderMetric("Moving time", formatHours(s.TotalMovingHours)),
		RenderMetric("Elapsed time", formatHours(s.TotalElapsedHours)),
		"",
	}

	distance := []string{
		sectionTitleStyle.Render("Distance"),
		RenderMetric("Average", m.units.FormatDistance(s.AvgDistanceKM)),
		RenderMetric("Median", m.units.FormatDistance(s.MedianDistanceKM)),
		RenderMetric("Longest", m.units.FormatDistance(s.MaxDistanceKM)),
		RenderMetric("Shortest", m.units.FormatDistance(s.MinDistanceKM)),
		"",
	}

	intensity := []string{
		sectionTitleStyle.Render("Intensity"),
		RenderMetric("Avg speed", formatSpeed(s.AvgSpeedKMH)),
		RenderMetric("Top speed", formatSpeed(s.TopSpeedKMH)),
		RenderMetric("Avg max HR", formatHR(s.AvgMaxHR)),
		RenderMetric("Avg pace", service.FormatPace(s.AvgPaceMinPerKM)),
		RenderMetric("Best pace", service.FormatPace(s.BestPaceMinPerKM)),
		"",
	}

	terrain := []string{
		sectionTitleStyle.Render("Terrain"),
		RenderMetric("Avg max grade", formatGradePct(s.AvgMaxGrade)),
		RenderMetric("Steepest grade", formatGradePct(s.SteepestGrade)),
		RenderMetric("Avg grade", formatAvgGrade(s.AvgGrade)),
	}

	var lines []string
	lines = append(lines, volume...)
	lines = append(lines, distance...)
	lines = append(lines, intensity...)
	lines = append(lines, terrain...)
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))

	help := statusStyle.Render("\n  r/c/o: switch sport")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func formatSpeed(kmh float64) string {
	if kmh <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f km/h", kmh)
}

func formatHR(hr float64) string {
	if hr <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f bpm", hr)
}

func formatGradePct(grade float64) string {
	if grade <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", grade)
}

// formatAvgGrade keeps negative averages, only an exact zero means no data
func formatAvgGrade(grade float64) string {
	if grade == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", grade)
}
