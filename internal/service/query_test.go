package service

import (
	"math"
	"testing"

	"strava-insights/internal/activity"
)

func TestFormatPace(t *testing.T) {
	tests := []struct {
		pace     float64
		expected string
	}{
		{0, "N/A"},
		{-1.5, "N/A"},
		{5, "5:00 min/km"},
		{5.5, "5:30 min/km"},
		{4.755, "4:45 min/km"},
		{10.05, "10:03 min/km"},
		// seconds truncate, never round up
		{5.999, "5:59 min/km"},
		{0.25, "0:15 min/km"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatPace(tt.pace)
			if result != tt.expected {
				t.Errorf("FormatPace(%v) = %q, want %q", tt.pace, result, tt.expected)
			}
		})
	}
}

func TestCollectionRouting(t *testing.T) {
	q := NewQueryService(activity.Collection{
		{Name: "run 1", Type: "Run"},
		{Name: "ride 1", Type: "Ride"},
		{Name: "swim 1", Type: "Swim"},
		{Name: "run 2", Type: "Trail Run"},
	})

	if got := len(q.All()); got != 4 {
		t.Errorf("All() has %d activities, want 4", got)
	}
	if got := len(q.Collection(activity.Running)); got != 2 {
		t.Errorf("running bucket has %d activities, want 2", got)
	}
	if got := len(q.Collection(activity.Cycling)); got != 1 {
		t.Errorf("cycling bucket has %d activities, want 1", got)
	}
	if got := len(q.Collection(activity.Other)); got != 1 {
		t.Errorf("other bucket has %d activities, want 1", got)
	}
}

func TestGetOverview(t *testing.T) {
	q := NewQueryService(activity.Collection{
		{Type: "Run", DistanceKM: 10, MovingSeconds: 3600},
		{Type: "Ride", DistanceKM: 30, MovingSeconds: 5400},
		{Type: "Swim", DistanceKM: 2, MovingSeconds: 1800},
	})

	o := q.GetOverview()
	if o.TotalCount != 3 || o.RunningCount != 1 || o.CyclingCount != 1 || o.OtherCount != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 3/1/1/1",
			o.TotalCount, o.RunningCount, o.CyclingCount, o.OtherCount)
	}
	if math.Abs(o.TotalDistanceKM-42) > 1e-9 {
		t.Errorf("TotalDistanceKM = %v, want 42", o.TotalDistanceKM)
	}
	if math.Abs(o.TotalMovingHours-3) > 1e-9 {
		t.Errorf("TotalMovingHours = %v, want 3", o.TotalMovingHours)
	}
}

func TestGetOverviewEmpty(t *testing.T) {
	o := NewQueryService(nil).GetOverview()
	if o.TotalCount != 0 || o.TotalDistanceKM != 0 || o.TotalMovingHours != 0 {
		t.Errorf("empty overview = %+v, want zeroes", o)
	}
}

func TestGetSummary(t *testing.T) {
	q := NewQueryService(activity.Collection{
		{
			Type: "Run", DistanceKM: 10, MovingSeconds: 3000, ElapsedSeconds: 3200,
			AvgSpeedKMH: 12, MaxSpeedKMH: 15, MaxHeartRate: 180,
			PaceMinPerKM: 5, MaxGrade: 8, AvgGrade: 1.5, Commute: true,
		},
		{
			Type: "Run", DistanceKM: 20, MovingSeconds: 7200, ElapsedSeconds: 7600,
			AvgSpeedKMH: 10, MaxSpeedKMH: 13, MaxHeartRate: 170,
			PaceMinPerKM: 6, MaxGrade: 4, AvgGrade: -0.5,
		},
		// a bare-bones activity: distance only, everything else absent
		{Type: "Run", DistanceKM: 6, MovingSeconds: 0, AvgGrade: 0},
	})

	s := q.GetSummary(activity.Running)

	if s.Count != 3 {
		t.Fatalf("Count = %d, want 3", s.Count)
	}
	if s.CommuteCount != 1 {
		t.Errorf("CommuteCount = %d, want 1", s.CommuteCount)
	}
	if math.Abs(s.CommutePercent-100.0/3) > 1e-9 {
		t.Errorf("CommutePercent = %v, want %v", s.CommutePercent, 100.0/3)
	}
	if math.Abs(s.TotalDistanceKM-36) > 1e-9 {
		t.Errorf("TotalDistanceKM = %v, want 36", s.TotalDistanceKM)
	}
	if math.Abs(s.TotalMovingHours-(10200.0/3600)) > 1e-9 {
		t.Errorf("TotalMovingHours = %v", s.TotalMovingHours)
	}
	if math.Abs(s.TotalElapsedHours-(10800.0/3600)) > 1e-9 {
		t.Errorf("TotalElapsedHours = %v", s.TotalElapsedHours)
	}

	// distance stats cover all three activities
	if math.Abs(s.AvgDistanceKM-12) > 1e-9 {
		t.Errorf("AvgDistanceKM = %v, want 12", s.AvgDistanceKM)
	}
	if math.Abs(s.MedianDistanceKM-10) > 1e-9 {
		t.Errorf("MedianDistanceKM = %v, want 10", s.MedianDistanceKM)
	}
	if s.MaxDistanceKM != 20 || s.MinDistanceKM != 6 {
		t.Errorf("distance range = %v..%v, want 6..20", s.MinDistanceKM, s.MaxDistanceKM)
	}

	// metric stats skip the sensorless activity
	if math.Abs(s.AvgSpeedKMH-11) > 1e-9 {
		t.Errorf("AvgSpeedKMH = %v, want 11", s.AvgSpeedKMH)
	}
	if s.TopSpeedKMH != 15 {
		t.Errorf("TopSpeedKMH = %v, want 15", s.TopSpeedKMH)
	}
	if math.Abs(s.AvgMaxHR-175) > 1e-9 {
		t.Errorf("AvgMaxHR = %v, want 175", s.AvgMaxHR)
	}
	if math.Abs(s.AvgPaceMinPerKM-5.5) > 1e-9 {
		t.Errorf("AvgPaceMinPerKM = %v, want 5.5", s.AvgPaceMinPerKM)
	}
	if s.BestPaceMinPerKM != 5 {
		t.Errorf("BestPaceMinPerKM = %v, want 5", s.BestPaceMinPerKM)
	}
	if math.Abs(s.AvgMaxGrade-6) > 1e-9 {
		t.Errorf("AvgMaxGrade = %v, want 6", s.AvgMaxGrade)
	}
	if s.SteepestGrade != 8 {
		t.Errorf("SteepestGrade = %v, want 8", s.SteepestGrade)
	}
	// negative grades count, only an exact zero reads as missing
	if math.Abs(s.AvgGrade-0.5) > 1e-9 {
		t.Errorf("AvgGrade = %v, want 0.5", s.AvgGrade)
	}
}

func TestGetSummaryEmptyBucket(t *testing.T) {
	q := NewQueryService(activity.Collection{
		{Type: "Ride", DistanceKM: 30},
	})

	s := q.GetSummary(activity.Running)
	if s.Count != 0 {
		t.Fatalf("Count = %d, want 0", s.Count)
	}
	if s.AvgDistanceKM != 0 || s.BestPaceMinPerKM != 0 || s.CommutePercent != 0 {
		t.Errorf("empty summary carries non-zero stats: %+v", s)
	}
}

func TestGetSummaryIsRepeatable(t *testing.T) {
	q := NewQueryService(activity.Collection{
		{Type: "Run", DistanceKM: 10, MovingSeconds: 3000, PaceMinPerKM: 5, AvgGrade: 1.5},
		{Type: "Run", DistanceKM: 21, MovingSeconds: 7000, PaceMinPerKM: 5.6},
	})

	first := q.GetSummary(activity.Running)
	second := q.GetSummary(activity.Running)
	if first != second {
		t.Errorf("repeated summaries differ:\n%+v\n%+v", first, second)
	}
}

func TestGetSummaryAllMetricsAbsent(t *testing.T) {
	// activities exist but no optional metric was ever recorded
	q := NewQueryService(activity.Collection{
		{Type: "Run", DistanceKM: 5},
		{Type: "Run", DistanceKM: 7},
	})

	s := q.GetSummary(activity.Running)
	if s.Count != 2 {
		t.Fatalf("Count = %d, want 2", s.Count)
	}
	if s.AvgSpeedKMH != 0 || s.AvgMaxHR != 0 || s.AvgPaceMinPerKM != 0 || s.AvgGrade != 0 {
		t.Errorf("absent metrics should summarize to 0: %+v", s)
	}
	if math.Abs(s.AvgDistanceKM-6) > 1e-9 {
		t.Errorf("AvgDistanceKM = %v, want 6", s.AvgDistanceKM)
	}
}
