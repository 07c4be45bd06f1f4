package service

import "strava-insights/internal/activity"

// Record pairs a personal best with the activity it was set on
type Record struct {
	Activity activity.Activity
	Value    float64
}

// Records holds one sport bucket's personal bests. A field is nil when
// no activity in the bucket qualifies for it.
type Records struct {
	Longest       *Record // by distance, set for any non-empty bucket
	FastestSpeed  *Record // by average speed, needs a positive speed
	SteepestGrade *Record // by max grade, needs a positive grade
	BestPace      *Record // lowest positive pace, running bucket only
}

// GetRecords finds the personal bests for one sport bucket, so a long
// ride never shadows the longest run. Ties keep the earlier activity
// in file order. Pace is a running metric, so only the running bucket
// gets a pace record.
func (q *QueryService) GetRecords(b activity.Bucket) Records {
	col := q.Collection(b)
	var records Records

	for i := range col {
		a := col[i]

		if records.Longest == nil || a.DistanceKM > records.Longest.Value {
			records.Longest = &Record{Activity: a, Value: a.DistanceKM}
		}
		if a.AvgSpeedKMH > 0 && (records.FastestSpeed == nil || a.AvgSpeedKMH > records.FastestSpeed.Value) {
			records.FastestSpeed = &Record{Activity: a, Value: a.AvgSpeedKMH}
		}
		if a.MaxGrade > 0 && (records.SteepestGrade == nil || a.MaxGrade > records.SteepestGrade.Value) {
			records.SteepestGrade = &Record{Activity: a, Value: a.MaxGrade}
		}
		if b == activity.Running && a.PaceMinPerKM > 0 &&
			(records.BestPace == nil || a.PaceMinPerKM < records.BestPace.Value) {
			records.BestPace = &Record{Activity: a, Value: a.PaceMinPerKM}
		}
	}
	return records
}
