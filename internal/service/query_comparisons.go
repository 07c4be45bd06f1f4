package service

import (
	"errors"

	"strava-insights/internal/activity"
)

// ErrEmptyBucket is returned when a comparison side has no activities
var ErrEmptyBucket = errors.New("no activities to compare")

// ComparisonSide holds one sport's numbers in a comparison
type ComparisonSide struct {
	Count           int
	CountPercent    float64
	DistanceKM      float64
	DistancePercent float64
	AvgDistanceKM   float64
	MovingHours     float64
}

// Comparison puts running and cycling side by side
type Comparison struct {
	Running ComparisonSide
	Cycling ComparisonSide

	// DistanceRatio is how many times longer the longer sport's average
	// activity is; 1 with LongerSport "" when the averages match.
	DistanceRatio float64
	LongerSport   string
}

// GetComparison compares running against cycling. Both buckets must
// have at least one activity, otherwise ErrEmptyBucket.
func (q *QueryService) GetComparison() (*Comparison, error) {
	if len(q.running) == 0 || len(q.cycling) == 0 {
		return nil, ErrEmptyBucket
	}

	c := &Comparison{
		Running: buildSide(q.running),
		Cycling: buildSide(q.cycling),
	}

	totalCount := float64(c.Running.Count + c.Cycling.Count)
	c.Running.CountPercent = float64(c.Running.Count) / totalCount * 100
	c.Cycling.CountPercent = float64(c.Cycling.Count) / totalCount * 100

	totalDistance := c.Running.DistanceKM + c.Cycling.DistanceKM
	c.Running.DistancePercent = c.Running.DistanceKM / totalDistance * 100
	c.Cycling.DistancePercent = c.Cycling.DistanceKM / totalDistance * 100

	switch {
	case c.Running.AvgDistanceKM > c.Cycling.AvgDistanceKM:
		c.DistanceRatio = c.Running.AvgDistanceKM / c.Cycling.AvgDistanceKM
		c.LongerSport = activity.Running.String()
	case c.Cycling.AvgDistanceKM > c.Running.AvgDistanceKM:
		c.DistanceRatio = c.Cycling.AvgDistanceKM / c.Running.AvgDistanceKM
		c.LongerSport = activity.Cycling.String()
	default:
		c.DistanceRatio = 1
	}

	return c, nil
}

// buildSide computes one sport's side of the comparison. Every loaded
// activity has positive distance, so a non-empty side always has a
// positive total and average.
func buildSide(col activity.Collection) ComparisonSide {
	side := ComparisonSide{Count: len(col)}
	for _, a := range col {
		side.DistanceKM += a.DistanceKM
		side.MovingHours += a.MovingSeconds
	}
	side.MovingHours /= SecondsPerHour
	side.AvgDistanceKM = side.DistanceKM / float64(side.Count)
	return side
}
