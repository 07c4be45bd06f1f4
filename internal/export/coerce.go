package export

import (
	"strconv"
	"strings"
)

// parseNumber converts a cell to a float. Empty and unparsable cells
// become 0 rather than an error; exports routinely leave metric columns
// blank for activities recorded without a sensor.
func parseNumber(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return value
}

// parseFlag reports whether a cell holds the export's TRUE marker.
// The comparison is case-insensitive and unstripped: a padded value
// like " TRUE " does not count.
func parseFlag(text string) bool {
	return strings.ToUpper(text) == "TRUE"
}

// toKMH converts a speed from the export's m/s to km/h.
// Non-positive readings collapse to 0.
func toKMH(metersPerSec float64) float64 {
	if metersPerSec <= 0 {
		return 0
	}
	return metersPerSec * 3.6
}
