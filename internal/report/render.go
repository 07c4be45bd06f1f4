package report

import (
	"fmt"
	"strings"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"

	"github.com/dustin/go-humanize"
)

const defaultBarWidth = 40

// Renderer produces the plain-text form of each report, suitable for
// piping. Distances stay in km regardless of display preferences.
type Renderer struct {
	queries  *service.QueryService
	barWidth int
}

// NewRenderer creates a renderer over the given queries. barWidth
// scales the monthly chart bars.
func NewRenderer(q *service.QueryService, barWidth int) *Renderer {
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	return &Renderer{queries: q, barWidth: barWidth}
}

// Render returns the report text, ending with a newline.
func (r *Renderer) Render(k Kind) string {
	switch k {
	case Overview:
		return r.renderOverview()
	case Stats:
		return r.renderStats()
	case Weekly:
		return r.renderWeekly()
	case TimeOfDay:
		return r.renderTimeOfDay()
	case Records:
		return r.renderRecords()
	case Gear:
		return r.renderGear()
	case Monthly:
		return r.renderMonthly()
	case Comparison:
		return r.renderComparison()
	}
	return ""
}

var buckets = []activity.Bucket{activity.Running, activity.Cycling, activity.Other}

func (r *Renderer) renderOverview() string {
	o := r.queries.GetOverview()

	var b strings.Builder
	b.WriteString(sectionHeader("Overview") + "\n")
	writeKV(&b, "Total activities", formatCount(o.TotalCount))
	if o.TotalCount > 0 {
		writeKV(&b, "Running", fmt.Sprintf("%s (%s)", formatCount(o.RunningCount), sharePercent(o.RunningCount, o.TotalCount)))
		writeKV(&b, "Cycling", fmt.Sprintf("%s (%s)", formatCount(o.CyclingCount), sharePercent(o.CyclingCount, o.TotalCount)))
		writeKV(&b, "Other", fmt.Sprintf("%s (%s)", formatCount(o.OtherCount), sharePercent(o.OtherCount, o.TotalCount)))
		writeKV(&b, "Total distance", formatKM(o.TotalDistanceKM))
		writeKV(&b, "Moving time", formatHours(o.TotalMovingHours))
	}
	return b.String()
}

func (r *Renderer) renderStats() string {
	var b strings.Builder
	b.WriteString(sectionHeader("Detailed Statistics") + "\n")

	for _, bucket := range buckets {
		s := r.queries.GetSummary(bucket)
		b.WriteString("\n" + bucket.String() + "\n")
		if s.Count == 0 {
			b.WriteString("  No activities.\n")
			continue
		}

		writeKV(&b, "Activities", formatCount(s.Count))
		writeKV(&b, "Commutes", fmt.Sprintf("%s (%.1f%%)", formatCount(s.CommuteCount), s.CommutePercent))
		writeKV(&b, "Total distance", formatKM(s.TotalDistanceKM))
		writeKV(&b, "Moving time", formatHours(s.TotalMovingHours))
		writeKV(&b, "Elapsed time", formatHours(s.TotalElapsedHours))
		writeKV(&b, "Avg distance", formatKM(s.AvgDistanceKM))
		writeKV(&b, "Median distance", formatKM(s.MedianDistanceKM))
		writeKV(&b, "Longest", formatKM(s.MaxDistanceKM))
		writeKV(&b, "Shortest", formatKM(s.MinDistanceKM))
		writeKV(&b, "Avg speed", formatOptional(s.AvgSpeedKMH, "%.1f km/h"))
		writeKV(&b, "Top speed", formatOptional(s.TopSpeedKMH, "%.1f km/h"))
		writeKV(&b, "Avg max HR", formatOptional(s.AvgMaxHR, "%.0f bpm"))
		writeKV(&b, "Avg pace", service.FormatPace(s.AvgPaceMinPerKM))
		writeKV(&b, "Best pace", service.FormatPace(s.BestPaceMinPerKM))
		writeKV(&b, "Avg max grade", formatOptional(s.AvgMaxGrade, "%.1f%%"))
		writeKV(&b, "Steepest grade", formatOptional(s.SteepestGrade, "%.1f%%"))
		writeKV(&b, "Avg grade", formatGrade(s.AvgGrade))
	}
	return b.String()
}

func (r *Renderer) renderWeekly() string {
	var b strings.Builder
	b.WriteString(sectionHeader("Weekly Patterns") + "\n")

	for _, bucket := range buckets {
		p := r.queries.GetWeeklyPattern(bucket)
		b.WriteString("\n" + bucket.String() + "\n")
		if p.FavoriteDay == "" {
			b.WriteString("  No activities.\n")
			continue
		}

		fmt.Fprintf(&b, "  %-10s  %5s  %9s  %7s\n", "Day", "Count", "Total km", "Avg km")
		for _, d := range p.Days {
			fmt.Fprintf(&b, "  %-10s  %5d  %9.1f  %7.1f\n", d.Day, d.Count, d.TotalDistanceKM, d.AvgDistanceKM)
		}
		fmt.Fprintf(&b, "  Favorite day: %s (%d activities)\n", p.FavoriteDay, p.FavoriteCount)
	}
	return b.String()
}

func (r *Renderer) renderTimeOfDay() string {
	var b strings.Builder
	b.WriteString(sectionHeader("Time of Day") + "\n")

	for _, bucket := range buckets {
		periods := r.queries.GetTimeOfDay(bucket)
		b.WriteString("\n" + bucket.String() + "\n")
		if len(periods) == 0 {
			b.WriteString("  No activities.\n")
			continue
		}

		for _, p := range periods {
			fmt.Fprintf(&b, "  %-24s  %s (%.1f%%)\n", p.Period, formatCount(p.Count), p.Percent)
		}
	}
	return b.String()
}

func (r *Renderer) renderRecords() string {
	var b strings.Builder
	b.WriteString(sectionHeader("Personal Records") + "\n")

	for _, bucket := range buckets {
		rec := r.queries.GetRecords(bucket)
		b.WriteString("\n" + bucket.String() + "\n")
		if rec.Longest == nil {
			b.WriteString("  No activities.\n")
			continue
		}

		writeRecord(&b, "Longest", rec.Longest, formatKM(rec.Longest.Value))
		if rec.FastestSpeed != nil {
			writeRecord(&b, "Fastest speed", rec.FastestSpeed, fmt.Sprintf("%.1f km/h", rec.FastestSpeed.Value))
		}
		if rec.SteepestGrade != nil {
			writeRecord(&b, "Steepest grade", rec.SteepestGrade, fmt.Sprintf("%.1f%%", rec.SteepestGrade.Value))
		}
		if rec.BestPace != nil {
			writeRecord(&b, "Best pace", rec.BestPace, service.FormatPace(rec.BestPace.Value))
		}
	}
	return b.String()
}

func (r *Renderer) renderGear() string {
	var b strings.Builder
	b.WriteString(sectionHeader("Gear Usage") + "\n")

	for _, bucket := range buckets {
		gear := r.queries.GetGearUsage(bucket)
		b.WriteString("\n" + bucket.String() + "\n")
		if len(gear) == 0 {
			b.WriteString("  No gear recorded.\n")
			continue
		}

		fmt.Fprintf(&b, "  %-28s  %5s  %9s  %7s\n", "Gear", "Count", "Total km", "Avg km")
		for _, g := range gear {
			fmt.Fprintf(&b, "  %-28s  %5d  %9.1f  %7.1f\n", truncate(g.Name, 28), g.Count, g.TotalDistanceKM, g.AvgDistanceKM)
		}
	}
	return b.String()
}

func (r *Renderer) renderMonthly() string {
	p := r.queries.GetMonthlyPattern()

	var b strings.Builder
	b.WriteString(sectionHeader("Monthly Activity") + "\n")

	if len(p.Series) == 0 {
		b.WriteString("  No activities.\n")
		return b.String()
	}

	for _, series := range p.Series {
		b.WriteString("\n" + series.Bucket.String() + "\n")

		max := 0
		for _, m := range series.Months {
			if m.Count > max {
				max = m.Count
			}
		}
		for _, m := range series.Months {
			bar := strings.Repeat("█", int(float64(m.Count)/float64(max)*float64(r.barWidth)))
			fmt.Fprintf(&b, "  %-8s  %s %d\n", m.Label, bar, m.Count)
		}
	}
	return b.String()
}

func (r *Renderer) renderComparison() string {
	var b strings.Builder
	b.WriteString(sectionHeader("Running vs Cycling") + "\n")

	c, err := r.queries.GetComparison()
	if err != nil {
		b.WriteString("  Need both running and cycling activities to compare.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-18s  %12s  %12s\n", "", "Running", "Cycling")
	writeCompareRow(&b, "Activities", formatCount(c.Running.Count), formatCount(c.Cycling.Count))
	writeCompareRow(&b, "Share", fmt.Sprintf("%.1f%%", c.Running.CountPercent), fmt.Sprintf("%.1f%%", c.Cycling.CountPercent))
	writeCompareRow(&b, "Distance", formatKM(c.Running.DistanceKM), formatKM(c.Cycling.DistanceKM))
	writeCompareRow(&b, "Distance share", fmt.Sprintf("%.1f%%", c.Running.DistancePercent), fmt.Sprintf("%.1f%%", c.Cycling.DistancePercent))
	writeCompareRow(&b, "Avg distance", formatKM(c.Running.AvgDistanceKM), formatKM(c.Cycling.AvgDistanceKM))
	writeCompareRow(&b, "Moving time", formatHours(c.Running.MovingHours), formatHours(c.Cycling.MovingHours))

	b.WriteString("\n")
	switch c.LongerSport {
	case activity.Running.String():
		fmt.Fprintf(&b, "  The average run is %.1fx longer than the average ride.\n", c.DistanceRatio)
	case activity.Cycling.String():
		fmt.Fprintf(&b, "  The average ride is %.1fx longer than the average run.\n", c.DistanceRatio)
	default:
		b.WriteString("  Average distances are about the same.\n")
	}
	return b.String()
}

func sectionHeader(title string) string {
	dividerLen := 60 - len([]rune(title)) - 4
	if dividerLen < 0 {
		dividerLen = 0
	}
	return fmt.Sprintf("── %s %s", title, strings.Repeat("─", dividerLen))
}

func writeKV(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-18s  %s\n", label, value)
}

func writeCompareRow(b *strings.Builder, label, running, cycling string) {
	fmt.Fprintf(b, "  %-18s  %12s  %12s\n", label, running, cycling)
}

func writeRecord(b *strings.Builder, label string, rec *service.Record, value string) {
	fmt.Fprintf(b, "  %-18s  %-32s  %s\n", label, truncate(rec.Activity.Name, 32), value)
}

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func formatKM(km float64) string {
	return humanize.CommafWithDigits(km, 1) + " km"
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.1f h", h)
}

func formatOptional(v float64, format string) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprintf(format, v)
}

// formatGrade treats only an exact zero as missing, grades can be
// legitimately negative
func formatGrade(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", v)
}

func sharePercent(part, total int) string {
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}

// truncate counts runes, not bytes, so names with emoji or accents
// never get cut mid-character
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
