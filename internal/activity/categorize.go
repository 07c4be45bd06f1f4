package activity

import "strings"

// Bucket identifies the sport family an activity is grouped under.
type Bucket int

const (
	Running Bucket = iota
	Cycling
	Other
)

// String returns the display name for the bucket
func (b Bucket) String() string {
	switch b {
	case Running:
		return "Running"
	case Cycling:
		return "Cycling"
	default:
		return "Other"
	}
}

var cyclingMarkers = []string{"ride", "cycling", "bike"}

// Categorize maps a raw activity type to its sport family. Matching is
// case-insensitive and substring based so export subtypes (Trail Run,
// Virtual Ride, E-Bike Ride) land with their parent sport. The running
// rule is checked first; every type falls into exactly one bucket.
func Categorize(activityType string) Bucket {
	lower := strings.ToLower(activityType)
	if strings.Contains(lower, "run") {
		return Running
	}
	for _, marker := range cyclingMarkers {
		if strings.Contains(lower, marker) {
			return Cycling
		}
	}
	return Other
}

// Partition splits a collection into running, cycling, and other
// activities, preserving source order within each group.
func Partition(col Collection) (running, cycling, other Collection) {
	for _, a := range col {
		switch Categorize(a.Type) {
		case Running:
			running = append(running, a)
		case Cycling:
			cycling = append(cycling, a)
		default:
			other = append(other, a)
		}
	}
	return running, cycling, other
}
