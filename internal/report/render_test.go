package report

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"strava-insights/internal/activity"
	"strava-insights/internal/service"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	col := activity.Collection{
		{
			Name: "Morning Run", Type: "Run", Gear: "Pegasus 40",
			DistanceKM: 10, MovingSeconds: 3000, ElapsedSeconds: 3100,
			AvgSpeedKMH: 12, MaxSpeedKMH: 15, MaxHeartRate: 175,
			PaceMinPerKM: 5, MaxGrade: 6, AvgGrade: 0.4,
			StartTime: time.Date(2024, time.January, 5, 6, 30, 0, 0, time.UTC),
			DayOfWeek: "Friday", Hour: 6,
		},
		{
			Name: "Commute Ride", Type: "Ride", Commute: true,
			DistanceKM: 12, MovingSeconds: 2400, ElapsedSeconds: 2500,
			AvgSpeedKMH: 18, MaxSpeedKMH: 32,
			StartTime: time.Date(2024, time.February, 12, 8, 0, 0, 0, time.UTC),
			DayOfWeek: "Monday", Hour: 8,
		},
		{
			Name: "Long Ride", Type: "Ride", Gear: "Road Bike",
			DistanceKM: 80, MovingSeconds: 10800, ElapsedSeconds: 12000,
			AvgSpeedKMH: 26.7, MaxSpeedKMH: 58, MaxGrade: 11,
			StartTime: time.Date(2024, time.February, 17, 9, 15, 0, 0, time.UTC),
			DayOfWeek: "Saturday", Hour: 9,
		},
	}
	return NewRenderer(service.NewQueryService(col), 40)
}

func TestRenderEveryKind(t *testing.T) {
	r := testRenderer(t)
	for _, k := range All {
		t.Run(string(k), func(t *testing.T) {
			out := r.Render(k)
			if out == "" {
				t.Fatalf("Render(%s) returned nothing", k)
			}
			if !strings.HasSuffix(out, "\n") {
				t.Errorf("Render(%s) does not end with a newline", k)
			}
		})
	}
}

func TestRenderOverview(t *testing.T) {
	out := testRenderer(t).Render(Overview)

	for _, want := range []string{
		"Overview",
		"Total activities",
		"3",
		"102 km",
		"Moving time",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("overview report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStatsMarksMissingMetrics(t *testing.T) {
	out := testRenderer(t).Render(Stats)

	if !strings.Contains(out, "Running") || !strings.Contains(out, "Cycling") || !strings.Contains(out, "Other") {
		t.Fatalf("stats report missing a sport section:\n%s", out)
	}
	// the other bucket is empty
	if !strings.Contains(out, "No activities.") {
		t.Errorf("stats report should note the empty bucket:\n%s", out)
	}
	// rides carry no pace
	if !strings.Contains(out, "N/A") {
		t.Errorf("stats report should mark the missing cycling pace:\n%s", out)
	}
}

func TestRenderWeeklyFavorite(t *testing.T) {
	out := testRenderer(t).Render(Weekly)
	if !strings.Contains(out, "Favorite day: Friday (1 activities)") {
		t.Errorf("weekly report missing the running favorite:\n%s", out)
	}
	if !strings.Contains(out, "Monday") || !strings.Contains(out, "Sunday") {
		t.Errorf("weekly report should frame the whole week:\n%s", out)
	}
}

func TestRenderRecordsPerBucket(t *testing.T) {
	out := testRenderer(t).Render(Records)

	// each sport keeps its own bests: the run is the longest run even
	// though both rides are longer
	for _, want := range []string{
		"Running", "Morning Run", "10 km", "12.0 km/h", "6.0%",
		"Best pace", "5:00 min/km",
		"Cycling", "Long Ride", "80 km", "26.7 km/h", "11.0%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("records report missing %q:\n%s", want, out)
		}
	}
	// the empty other bucket still gets its section
	if !strings.Contains(out, "No activities.") {
		t.Errorf("records report should note the empty bucket:\n%s", out)
	}
	// pace records never leave the running section
	if i := strings.Index(out, "Cycling"); i >= 0 && strings.Contains(out[i:], "Best pace") {
		t.Errorf("cycling section carries a pace record:\n%s", out)
	}
}

func TestRenderGearLabelsUnspecified(t *testing.T) {
	out := testRenderer(t).Render(Gear)
	if !strings.Contains(out, "Pegasus 40") || !strings.Contains(out, "Road Bike") {
		t.Errorf("gear report missing named gear:\n%s", out)
	}
	if !strings.Contains(out, service.NoGearLabel) {
		t.Errorf("gear report should label the gearless commute:\n%s", out)
	}
}

func TestRenderMonthlyBarsScaleToMax(t *testing.T) {
	out := testRenderer(t).Render(Monthly)

	if !strings.Contains(out, "Jan 2024") || !strings.Contains(out, "Feb 2024") {
		t.Fatalf("monthly report missing month labels:\n%s", out)
	}
	// cycling peaks at 2 in February, so that bar fills the full width
	if !strings.Contains(out, strings.Repeat("█", 40)+" 2") {
		t.Errorf("monthly report missing the full-width peak bar:\n%s", out)
	}
}

func TestRenderComparison(t *testing.T) {
	out := testRenderer(t).Render(Comparison)

	if !strings.Contains(out, "Running vs Cycling") {
		t.Fatalf("comparison report missing header:\n%s", out)
	}
	// average ride 46 km vs average run 10 km
	if !strings.Contains(out, "The average ride is 4.6x longer than the average run.") {
		t.Errorf("comparison report missing the ratio line:\n%s", out)
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii", "Morning Run", 20, "Morning Run"},
		{"long ascii", "A very long activity name", 10, "A very ..."},
		{"exact length", "1234567890", 10, "1234567890"},
		{"accents survive the cut", "Célèbre côte à vélo!", 10, "Célèbre..."},
		{"emoji survive the cut", "🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃", 10, "🏃🏃🏃🏃🏃🏃🏃..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
			}
		})
	}
}

func TestRenderComparisonNeedsBothSports(t *testing.T) {
	r := NewRenderer(service.NewQueryService(activity.Collection{
		{Name: "Solo Run", Type: "Run", DistanceKM: 5},
	}), 40)

	out := r.Render(Comparison)
	if !strings.Contains(out, "Need both running and cycling activities to compare.") {
		t.Errorf("comparison report should explain the missing sport:\n%s", out)
	}
}
