package activity

import "time"

// Activity represents one normalized row of a Strava CSV export.
// All derived values are computed at load time; records are never
// mutated afterwards.
type Activity struct {
	Name        string
	Type        string
	Description string
	Gear        string

	DistanceKM     float64 // kilometers
	MovingSeconds  float64 // seconds
	ElapsedSeconds float64 // seconds
	ElevationLow   float64 // meters
	ElevationHigh  float64 // meters
	MaxHeartRate   float64 // bpm
	MaxSpeedKMH    float64 // km/h, converted from the export's m/s
	MaxGrade       float64 // percent
	AvgGrade       float64 // percent
	AvgSpeedKMH    float64 // km/h, converted from the export's m/s
	PaceMinPerKM   float64 // min/km, 0 when distance or moving time is missing
	Commute        bool

	StartTime time.Time
	DayOfWeek string // weekday name derived from StartTime
	Hour      int    // 0-23, derived from StartTime
}

// Collection is an ordered list of activities in source row order.
// Duplicate rows are kept; rejected rows never reach a collection.
type Collection []Activity
