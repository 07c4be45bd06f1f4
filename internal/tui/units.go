package tui

import (
	"fmt"

	"strava-insights/internal/config"
)

const kmPerMile = 1.609344

// Units converts and formats distances based on user preferences.
// The analyses themselves always work in km; this only changes what
// the screens print.
type Units struct {
	cfg config.Config
}

// NewUnits creates a new Units helper with the given config
func NewUnits(cfg config.Config) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a km distance in the user's preferred unit
func (u Units) FormatDistance(km float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f mi", km/kmPerMile)
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatDistanceValue returns just the numeric distance value (no unit label)
func (u Units) FormatDistanceValue(km float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f", km/kmPerMile)
	}
	return fmt.Sprintf("%.1f", km)
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.cfg.DistanceUnit == "mi" {
		return "mi"
	}
	return "km"
}

// BarWidth returns the configured chart bar width
func (u Units) BarWidth() int {
	return u.cfg.BarWidth
}

// IsMiles returns true if the distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}

// formatDuration renders whole seconds as "3h 26m" or "42m"
func formatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// formatHours renders fractional hours as "12.3 h"
func formatHours(hours float64) string {
	return fmt.Sprintf("%.1f h", hours)
}

// truncateName counts runes, not bytes, so names with emoji or accents
// never get cut mid-character
func truncateName(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
