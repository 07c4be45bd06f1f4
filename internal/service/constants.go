package service

const (
	// Time conversions
	SecondsPerHour   = 3600
	SecondsPerMinute = 60

	// MonthlyWindow is how many recent months the monthly pattern keeps
	MonthlyWindow = 12

	// Month key and label layouts, e.g. "2024-01" and "Jan 2024"
	MonthKeyLayout   = "2006-01"
	MonthLabelLayout = "Jan 2006"
)

// WeekdayOrder lists the days Monday first: the order weekly tables
// render in and favorite-day ties resolve in.
var WeekdayOrder = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// dayPeriods partitions the 24-hour day for the time-of-day report.
// Ties in activity count resolve in this order.
var dayPeriods = [...]string{
	"Early Morning (5-8 AM)",
	"Morning (9-11 AM)",
	"Afternoon (12-4 PM)",
	"Evening (5-8 PM)",
	"Night (9 PM - 4 AM)",
}

// periodForHour maps an hour of day onto its dayPeriods index
func periodForHour(hour int) int {
	switch {
	case hour >= 5 && hour <= 8:
		return 0
	case hour >= 9 && hour <= 11:
		return 1
	case hour >= 12 && hour <= 16:
		return 2
	case hour >= 17 && hour <= 20:
		return 3
	default:
		return 4
	}
}
