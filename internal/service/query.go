package service

import (
	"fmt"

	"strava-insights/internal/activity"
	"strava-insights/internal/analysis"
)

// QueryService answers report queries over a loaded export
type QueryService struct {
	all     activity.Collection
	running activity.Collection
	cycling activity.Collection
	other   activity.Collection
}

// NewQueryService partitions the collection once so every query works
// from the same immutable groups.
func NewQueryService(col activity.Collection) *QueryService {
	running, cycling, other := activity.Partition(col)
	return &QueryService{
		all:     col,
		running: running,
		cycling: cycling,
		other:   other,
	}
}

// All returns every loaded activity in source order
func (q *QueryService) All() activity.Collection {
	return q.all
}

// Collection returns the activities in one sport bucket
func (q *QueryService) Collection(b activity.Bucket) activity.Collection {
	switch b {
	case activity.Running:
		return q.running
	case activity.Cycling:
		return q.cycling
	default:
		return q.other
	}
}

// Overview contains the headline numbers for a loaded export
type Overview struct {
	TotalCount   int
	RunningCount int
	CyclingCount int
	OtherCount   int

	TotalDistanceKM  float64
	TotalMovingHours float64
}

// GetOverview summarizes the whole export for the overview screen
func (q *QueryService) GetOverview() Overview {
	o := Overview{
		TotalCount:   len(q.all),
		RunningCount: len(q.running),
		CyclingCount: len(q.cycling),
		OtherCount:   len(q.other),
	}
	for _, a := range q.all {
		o.TotalDistanceKM += a.DistanceKM
		o.TotalMovingHours += a.MovingSeconds
	}
	o.TotalMovingHours /= SecondsPerHour
	return o
}

// SummaryStats holds detailed statistics for one sport bucket
type SummaryStats struct {
	Count          int
	CommuteCount   int
	CommutePercent float64

	TotalDistanceKM   float64
	TotalMovingHours  float64
	TotalElapsedHours float64

	AvgDistanceKM    float64
	MedianDistanceKM float64
	MaxDistanceKM    float64
	MinDistanceKM    float64

	AvgSpeedKMH float64
	TopSpeedKMH float64 // highest max speed across the bucket

	AvgMaxHR float64 // bpm

	AvgPaceMinPerKM  float64
	BestPaceMinPerKM float64 // lowest positive pace

	AvgMaxGrade   float64 // percent
	SteepestGrade float64 // percent
	AvgGrade      float64 // percent
}

// GetSummary computes detailed statistics for one sport bucket.
// Metric averages skip activities where the metric is absent (recorded
// as 0), so one watch without a sensor doesn't drag the numbers down.
// An empty bucket yields all zeroes, never an error.
func (q *QueryService) GetSummary(b activity.Bucket) SummaryStats {
	col := q.Collection(b)
	stats := SummaryStats{Count: len(col)}
	if len(col) == 0 {
		return stats
	}

	var distances, speeds, topSpeeds, heartRates, paces, maxGrades, avgGrades []float64
	for _, a := range col {
		stats.TotalDistanceKM += a.DistanceKM
		stats.TotalMovingHours += a.MovingSeconds
		stats.TotalElapsedHours += a.ElapsedSeconds
		if a.Commute {
			stats.CommuteCount++
		}
		if a.DistanceKM > 0 {
			distances = append(distances, a.DistanceKM)
		}
		if a.AvgSpeedKMH > 0 {
			speeds = append(speeds, a.AvgSpeedKMH)
		}
		if a.MaxSpeedKMH > 0 {
			topSpeeds = append(topSpeeds, a.MaxSpeedKMH)
		}
		if a.MaxHeartRate > 0 {
			heartRates = append(heartRates, a.MaxHeartRate)
		}
		if a.PaceMinPerKM > 0 {
			paces = append(paces, a.PaceMinPerKM)
		}
		if a.MaxGrade > 0 {
			maxGrades = append(maxGrades, a.MaxGrade)
		}
		// Grades run negative downhill, so for the overall average only
		// an exact zero reads as missing.
		if a.AvgGrade != 0 {
			avgGrades = append(avgGrades, a.AvgGrade)
		}
	}

	stats.TotalMovingHours /= SecondsPerHour
	stats.TotalElapsedHours /= SecondsPerHour
	stats.CommutePercent = float64(stats.CommuteCount) / float64(stats.Count) * 100

	stats.AvgDistanceKM = analysis.Mean(distances)
	stats.MedianDistanceKM = analysis.Median(distances)
	stats.MaxDistanceKM = analysis.Max(distances)
	stats.MinDistanceKM = analysis.Min(distances)
	stats.AvgSpeedKMH = analysis.Mean(speeds)
	stats.TopSpeedKMH = analysis.Max(topSpeeds)
	stats.AvgMaxHR = analysis.Mean(heartRates)
	stats.AvgPaceMinPerKM = analysis.Mean(paces)
	stats.BestPaceMinPerKM = analysis.Min(paces)
	stats.AvgMaxGrade = analysis.Mean(maxGrades)
	stats.SteepestGrade = analysis.Max(maxGrades)
	stats.AvgGrade = analysis.Mean(avgGrades)

	return stats
}

// FormatPace renders a decimal min/km pace as "M:SS min/km".
// Non-positive paces render as "N/A". Seconds truncate rather than
// round, so 5.999 shows as 5:59.
func FormatPace(minPerKM float64) string {
	if minPerKM <= 0 {
		return "N/A"
	}
	mins := int(minPerKM)
	secs := int((minPerKM - float64(mins)) * SecondsPerMinute)
	return fmt.Sprintf("%d:%02d min/km", mins, secs)
}
