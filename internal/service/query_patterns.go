package service

import (
	"sort"

	"strava-insights/internal/activity"
)

// DayStats holds one weekday's tallies in a weekly pattern
type DayStats struct {
	Day             string
	Count           int
	TotalDistanceKM float64
	AvgDistanceKM   float64
}

// WeeklyPattern always carries all seven days, Monday first
type WeeklyPattern struct {
	Days          []DayStats
	FavoriteDay   string // "" for an empty bucket
	FavoriteCount int
}

// GetWeeklyPattern tallies a bucket's activities by weekday. Every
// weekday appears even with zero activities. The favorite day has the
// highest count; ties go to the earliest day of the week.
func (q *QueryService) GetWeeklyPattern(b activity.Bucket) WeeklyPattern {
	col := q.Collection(b)

	counts := make(map[string]int)
	distances := make(map[string]float64)
	for _, a := range col {
		counts[a.DayOfWeek]++
		distances[a.DayOfWeek] += a.DistanceKM
	}

	pattern := WeeklyPattern{Days: make([]DayStats, 0, len(WeekdayOrder))}
	for _, day := range WeekdayOrder {
		stats := DayStats{
			Day:             day,
			Count:           counts[day],
			TotalDistanceKM: distances[day],
		}
		if stats.Count > 0 {
			stats.AvgDistanceKM = stats.TotalDistanceKM / float64(stats.Count)
		}
		pattern.Days = append(pattern.Days, stats)

		if stats.Count > pattern.FavoriteCount {
			pattern.FavoriteDay = day
			pattern.FavoriteCount = stats.Count
		}
	}
	return pattern
}

// TimePeriodStats holds one day-period's share of a bucket's activities
type TimePeriodStats struct {
	Period  string
	Count   int
	Percent float64
}

// GetTimeOfDay groups a bucket's activities into day periods, most
// active first. Empty periods are omitted; ties keep the period
// definition order.
func (q *QueryService) GetTimeOfDay(b activity.Bucket) []TimePeriodStats {
	col := q.Collection(b)
	if len(col) == 0 {
		return nil
	}

	var counts [len(dayPeriods)]int
	for _, a := range col {
		counts[periodForHour(a.Hour)]++
	}

	result := make([]TimePeriodStats, 0, len(dayPeriods))
	for i, name := range dayPeriods {
		if counts[i] == 0 {
			continue
		}
		result = append(result, TimePeriodStats{
			Period:  name,
			Count:   counts[i],
			Percent: float64(counts[i]) / float64(len(col)) * 100,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}
