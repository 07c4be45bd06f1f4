package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"strava-insights/internal/activity"
)

// Column names as they appear in a Strava activities.csv export.
const (
	colName        = "Activity Name"
	colType        = "Activity Type"
	colDescription = "Activity Description"
	colGear        = "Activity Gear"
	colDistance    = "Distance_KM"
	colMovingTime  = "Moving Time"
	colElapsedTime = "Elapsed Time"
	colElevLow     = "Elevation Low"
	colElevHigh    = "Elevation High"
	colMaxHR       = "Max Heart Rate"
	colMaxSpeed    = "Max Speed"
	colMaxGrade    = "Max Grade"
	colAvgGrade    = "Average Grade"
	colAvgSpeed    = "Average Speed"
	colCommute     = "Commute"
	colDate        = "Activity Date"
)

// dateLayout matches the export's timestamp format, e.g. "05 Jan 2024, 18:30:00".
const dateLayout = "02 Jan 2006, 15:04:05"

var (
	errNoDate     = errors.New("no activity date")
	errNoDistance = errors.New("no positive distance")
)

// row gives name-based access to one CSV record. Missing columns and
// short records both read as the empty string, like a sparse export.
type row struct {
	index  map[string]int
	fields []string
}

func (r row) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// displayName returns the activity name for diagnostics, or "Unknown"
// when the row has none.
func (r row) displayName() string {
	if name := r.get(colName); name != "" {
		return name
	}
	return "Unknown"
}

// normalizeRow converts one export record into an Activity.
//
// Text fields are copied verbatim. Numeric fields are coerced
// independently, so one bad cell zeroes that field without touching its
// neighbors. Speeds arrive in m/s and are stored in km/h. Pace is
// derived from moving time and distance when both are positive,
// otherwise 0. Rows without a parseable date or a positive distance
// are rejected.
func normalizeRow(r row) (activity.Activity, error) {
	a := activity.Activity{
		Name:        r.get(colName),
		Type:        r.get(colType),
		Description: r.get(colDescription),
		Gear:        r.get(colGear),
	}

	a.DistanceKM = parseNumber(r.get(colDistance))
	a.MovingSeconds = parseNumber(r.get(colMovingTime))
	a.ElapsedSeconds = parseNumber(r.get(colElapsedTime))
	a.ElevationLow = parseNumber(r.get(colElevLow))
	a.ElevationHigh = parseNumber(r.get(colElevHigh))
	a.MaxHeartRate = parseNumber(r.get(colMaxHR))
	a.MaxGrade = parseNumber(r.get(colMaxGrade))
	a.AvgGrade = parseNumber(r.get(colAvgGrade))

	a.AvgSpeedKMH = toKMH(parseNumber(r.get(colAvgSpeed)))
	a.MaxSpeedKMH = toKMH(parseNumber(r.get(colMaxSpeed)))

	a.Commute = parseFlag(r.get(colCommute))

	if a.DistanceKM > 0 && a.MovingSeconds > 0 {
		secondsPerKM := a.MovingSeconds / a.DistanceKM
		a.PaceMinPerKM = secondsPerKM / 60
	}

	// Some exports wrap the date cell in literal quotes.
	dateText := strings.Trim(strings.TrimSpace(r.get(colDate)), `"`)
	if dateText == "" {
		return activity.Activity{}, errNoDate
	}
	start, err := time.Parse(dateLayout, dateText)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("parse date %q: %w", dateText, err)
	}
	a.StartTime = start
	a.DayOfWeek = start.Weekday().String()
	a.Hour = start.Hour()

	if a.DistanceKM <= 0 {
		return activity.Activity{}, errNoDistance
	}

	return a, nil
}
