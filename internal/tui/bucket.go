package tui

import "strava-insights/internal/activity"

// bucketForKey maps a sport switcher key to its bucket
func bucketForKey(key string) (activity.Bucket, bool) {
	switch key {
	case "r":
		return activity.Running, true
	case "c":
		return activity.Cycling, true
	case "o":
		return activity.Other, true
	}
	return activity.Other, false
}

// bucketIndicator renders the sport switcher, bracketing the active one
func bucketIndicator(active activity.Bucket) string {
	labels := [...]string{"Running", "Cycling", "Other"}
	bracketed := [...]string{"[R]unning", "[C]ycling", "[O]ther"}

	out := ""
	for i, b := range [...]activity.Bucket{activity.Running, activity.Cycling, activity.Other} {
		if i > 0 {
			out += " | "
		}
		if b == active {
			out += bracketed[i]
		} else {
			out += labels[i]
		}
	}
	return statusStyle.Render(out)
}
