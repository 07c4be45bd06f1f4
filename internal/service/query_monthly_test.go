package service

import (
	"testing"
	"time"

	"strava-insights/internal/activity"
)

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 8, 0, 0, 0, time.UTC)
}

func TestGetMonthlyPattern(t *testing.T) {
	q := NewQueryService(activity.Collection{
		{Type: "Run", StartTime: monthStart(2024, time.January)},
		{Type: "Run", StartTime: monthStart(2024, time.January)},
		{Type: "Run", StartTime: monthStart(2024, time.March)},
		{Type: "Ride", StartTime: monthStart(2024, time.February)},
	})

	p := q.GetMonthlyPattern()

	want := []string{"2024-01", "2024-02", "2024-03"}
	if len(p.Window) != len(want) {
		t.Fatalf("window has %d months, want %d", len(p.Window), len(want))
	}
	for i, key := range want {
		if p.Window[i] != key {
			t.Errorf("Window[%d] = %s, want %s", i, p.Window[i], key)
		}
	}

	if len(p.Series) != 2 {
		t.Fatalf("got %d series, want 2 (no other-bucket activity)", len(p.Series))
	}

	running := p.Series[0]
	if running.Bucket != activity.Running {
		t.Fatalf("Series[0] is %s, want Running", running.Bucket)
	}
	if len(running.Months) != 2 {
		t.Fatalf("running has %d months, want 2 (February omitted)", len(running.Months))
	}
	jan := running.Months[0]
	if jan.Key != "2024-01" || jan.Label != "Jan 2024" || jan.Count != 2 {
		t.Errorf("running January = %+v", jan)
	}
	if running.Months[1].Key != "2024-03" || running.Months[1].Count != 1 {
		t.Errorf("running March = %+v", running.Months[1])
	}

	cycling := p.Series[1]
	if cycling.Bucket != activity.Cycling {
		t.Fatalf("Series[1] is %s, want Cycling", cycling.Bucket)
	}
	if len(cycling.Months) != 1 || cycling.Months[0].Key != "2024-02" {
		t.Errorf("cycling months = %+v", cycling.Months)
	}
}

func TestGetMonthlyPatternWindowCap(t *testing.T) {
	var col activity.Collection
	// 15 consecutive months of running, one activity each
	start := time.Date(2023, time.January, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		col = append(col, activity.Activity{Type: "Run", StartTime: start.AddDate(0, i, 0)})
	}

	p := NewQueryService(col).GetMonthlyPattern()

	if len(p.Window) != MonthlyWindow {
		t.Fatalf("window has %d months, want %d", len(p.Window), MonthlyWindow)
	}
	if p.Window[0] != "2023-04" {
		t.Errorf("Window[0] = %s, want 2023-04 (oldest months dropped)", p.Window[0])
	}
	if p.Window[len(p.Window)-1] != "2024-03" {
		t.Errorf("window ends at %s, want 2024-03", p.Window[len(p.Window)-1])
	}
	if len(p.Series) != 1 || len(p.Series[0].Months) != MonthlyWindow {
		t.Errorf("series months = %d, want %d", len(p.Series[0].Months), MonthlyWindow)
	}
}

func TestGetMonthlyPatternOldActivityFallsOff(t *testing.T) {
	col := activity.Collection{
		// a lone ride long before the recent running block
		{Type: "Ride", StartTime: monthStart(2022, time.May)},
	}
	start := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < MonthlyWindow; i++ {
		col = append(col, activity.Activity{Type: "Run", StartTime: start.AddDate(0, i, 0)})
	}

	p := NewQueryService(col).GetMonthlyPattern()

	if len(p.Window) != MonthlyWindow {
		t.Fatalf("window has %d months, want %d", len(p.Window), MonthlyWindow)
	}
	if p.Window[0] != "2024-01" {
		t.Errorf("Window[0] = %s, want 2024-01 (the old ride month dropped)", p.Window[0])
	}
	// the ride's only month left the window, so its series disappears too
	if len(p.Series) != 1 || p.Series[0].Bucket != activity.Running {
		t.Errorf("series = %+v, want running only", p.Series)
	}
}

func TestGetMonthlyPatternEmpty(t *testing.T) {
	p := NewQueryService(nil).GetMonthlyPattern()
	if len(p.Window) != 0 || len(p.Series) != 0 {
		t.Errorf("empty pattern = %+v", p)
	}
}

func TestGetMonthlyDistance(t *testing.T) {
	q := NewQueryService(activity.Collection{
		{Type: "Run", StartTime: monthStart(2024, time.January), DistanceKM: 10},
		{Type: "Ride", StartTime: monthStart(2024, time.January), DistanceKM: 40},
		{Type: "Run", StartTime: monthStart(2024, time.March), DistanceKM: 21},
	})

	d := q.GetMonthlyDistance()

	wantLabels := []string{"Jan 2024", "Mar 2024"}
	wantKM := []float64{50, 21}
	if len(d.Labels) != len(wantLabels) {
		t.Fatalf("got %d months, want %d", len(d.Labels), len(wantLabels))
	}
	for i := range wantLabels {
		if d.Labels[i] != wantLabels[i] {
			t.Errorf("Labels[%d] = %s, want %s", i, d.Labels[i], wantLabels[i])
		}
		if d.KM[i] != wantKM[i] {
			t.Errorf("KM[%d] = %v, want %v", i, d.KM[i], wantKM[i])
		}
	}
}

func TestGetMonthlyDistanceEmpty(t *testing.T) {
	d := NewQueryService(nil).GetMonthlyDistance()
	if len(d.Labels) != 0 || len(d.KM) != 0 {
		t.Errorf("empty trend = %+v", d)
	}
}
