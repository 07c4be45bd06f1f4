package service

import (
	"sort"
	"time"

	"strava-insights/internal/activity"
)

// MonthCount is one month's activity tally
type MonthCount struct {
	Key   string // e.g. "2024-01"
	Label string // e.g. "Jan 2024"
	Count int
}

// MonthlySeries is one sport's active months within the report window
type MonthlySeries struct {
	Bucket activity.Bucket
	Months []MonthCount // chronological, zero months omitted
}

// MonthlyPattern covers the most recent months with any activity,
// across all sports combined
type MonthlyPattern struct {
	Window []string        // month keys oldest first, at most MonthlyWindow
	Series []MonthlySeries // running, cycling, other; inactive sports omitted
}

// GetMonthlyPattern tallies activities per calendar month for each
// sport. The window is the last MonthlyWindow distinct months that saw
// any activity at all, so a sport idle in those months drops out even
// if it was busy earlier.
func (q *QueryService) GetMonthlyPattern() MonthlyPattern {
	buckets := []activity.Bucket{activity.Running, activity.Cycling, activity.Other}

	monthSet := make(map[string]struct{})
	counts := make([]map[string]int, len(buckets))
	for i, b := range buckets {
		counts[i] = make(map[string]int)
		for _, a := range q.Collection(b) {
			key := a.StartTime.Format(MonthKeyLayout)
			counts[i][key]++
			monthSet[key] = struct{}{}
		}
	}

	allMonths := make([]string, 0, len(monthSet))
	for key := range monthSet {
		allMonths = append(allMonths, key)
	}
	sort.Strings(allMonths)
	if len(allMonths) > MonthlyWindow {
		allMonths = allMonths[len(allMonths)-MonthlyWindow:]
	}

	pattern := MonthlyPattern{Window: allMonths}
	for i, b := range buckets {
		series := MonthlySeries{Bucket: b}
		for _, key := range allMonths {
			if n := counts[i][key]; n > 0 {
				series.Months = append(series.Months, MonthCount{
					Key:   key,
					Label: monthLabel(key),
					Count: n,
				})
			}
		}
		if len(series.Months) > 0 {
			pattern.Series = append(pattern.Series, series)
		}
	}
	return pattern
}

// MonthlyDistance is the all-sports distance trend over the report window
type MonthlyDistance struct {
	Labels []string  // "Jan 2006" per month
	KM     []float64 // total distance per month
}

// GetMonthlyDistance sums distance per calendar month across every
// sport, over the same window rule GetMonthlyPattern uses.
func (q *QueryService) GetMonthlyDistance() MonthlyDistance {
	km := make(map[string]float64)
	for _, a := range q.all {
		km[a.StartTime.Format(MonthKeyLayout)] += a.DistanceKM
	}

	keys := make([]string, 0, len(km))
	for key := range km {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > MonthlyWindow {
		keys = keys[len(keys)-MonthlyWindow:]
	}

	var d MonthlyDistance
	for _, key := range keys {
		d.Labels = append(d.Labels, monthLabel(key))
		d.KM = append(d.KM, km[key])
	}
	return d
}

// monthLabel converts a month key like "2024-01" to "Jan 2024"
func monthLabel(key string) string {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format(MonthLabelLayout)
}
