package service

import (
	"sort"

	"strava-insights/internal/activity"
)

// NoGearLabel groups activities recorded without gear
const NoGearLabel = "No gear specified"

// GearStats holds usage tallies for one piece of gear
type GearStats struct {
	Name            string
	Count           int
	TotalDistanceKM float64
	AvgDistanceKM   float64
}

// GetGearUsage tallies a bucket's activities by gear, most used first.
// Activities without gear group under NoGearLabel. When no activity in
// the bucket names any gear the report is empty rather than one big
// "no gear" row. Ties keep first-appearance order.
func (q *QueryService) GetGearUsage(b activity.Bucket) []GearStats {
	col := q.Collection(b)

	hasGear := false
	for _, a := range col {
		if a.Gear != "" {
			hasGear = true
			break
		}
	}
	if !hasGear {
		return nil
	}

	index := make(map[string]int)
	var result []GearStats
	for _, a := range col {
		name := a.Gear
		if name == "" {
			name = NoGearLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(result)
			index[name] = i
			result = append(result, GearStats{Name: name})
		}
		result[i].Count++
		result[i].TotalDistanceKM += a.DistanceKM
	}
	for i := range result {
		result[i].AvgDistanceKM = result[i].TotalDistanceKM / float64(result[i].Count)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}
