package tui

import (
	"fmt"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

// OverviewModel is the overview screen model
type OverviewModel struct {
	queries *service.QueryService
	units   Units

	overview service.Overview
	trend    service.MonthlyDistance
}

// NewOverviewModel creates a new overview model
func NewOverviewModel(qs *service.QueryService, units Units) OverviewModel {
	return OverviewModel{
		queries:  qs,
		units:    units,
		overview: qs.GetOverview(),
		trend:    qs.GetMonthlyDistance(),
	}
}

// Init initializes the overview screen
func (m OverviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the overview
func (m OverviewModel) View() string {
	if m.overview.TotalCount == 0 {
		return "\n  No activities in this export."
	}

	var sections []string

	totalsCard := m.renderTotalsCard()
	breakdownCard := m.renderBreakdownCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, totalsCard, "  ", breakdownCard)
	sections = append(sections, topRow)

	if len(m.trend.KM) > 2 {
		sections = append(sections, m.renderTrendChart())
	}

	help := statusStyle.Render("Press 2-8 for the analyses, 9 to browse activities, ? for help")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OverviewModel) renderTotalsCard() string {
	title := cardTitleStyle.Render("Whole Export")
	o := m.overview

	lines := []string{
		RenderMetric("Activities", humanize.Comma(int64(o.TotalCount))),
		RenderMetric("Distance", m.units.FormatDistance(o.TotalDistanceKM)),
		RenderMetric("Moving time", formatHours(o.TotalMovingHours)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderBreakdownCard() string {
	title := cardTitleStyle.Render("By Sport")
	o := m.overview

	rows := []struct {
		bucket activity.Bucket
		count  int
	}{
		{activity.Running, o.RunningCount},
		{activity.Cycling, o.CyclingCount},
		{activity.Other, o.OtherCount},
	}

	var lines []string
	for _, r := range rows {
		share := float64(r.count) / float64(o.TotalCount)
		line := fmt.Sprintf("%-8s %5s  %s %4.1f%%",
			r.bucket.String(),
			humanize.Comma(int64(r.count)),
			RenderProgressBar(share, 16),
			share*100)
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderTrendChart() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Distance by Month (%s)", m.units.DistanceLabel()))

	data := m.trend.KM
	if m.units.IsMiles() {
		data = make([]float64, len(m.trend.KM))
		for i, km := range m.trend.KM {
			data[i] = km / kmPerMile
		}
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	span := fmt.Sprintf("%s to %s", m.trend.Labels[0], m.trend.Labels[len(m.trend.Labels)-1])

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, mutedStyle.Render(span)))
}
