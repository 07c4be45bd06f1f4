package report

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one analysis report.
type Kind string

const (
	Overview   Kind = "overview"
	Stats      Kind = "stats"
	Weekly     Kind = "weekly"
	TimeOfDay  Kind = "timeofday"
	Records    Kind = "records"
	Gear       Kind = "gear"
	Monthly    Kind = "monthly"
	Comparison Kind = "comparison"
)

// All lists every report in render order.
var All = []Kind{Overview, Stats, Weekly, TimeOfDay, Records, Gear, Monthly, Comparison}

// ErrUnknownReport is returned for a selection that names no report
var ErrUnknownReport = errors.New("unknown report")

// Dispatch maps a selection argument to the reports it runs, in render
// order. An empty selection or "all" runs everything.
func Dispatch(selection string) ([]Kind, error) {
	selection = strings.ToLower(strings.TrimSpace(selection))

	if selection == "" || selection == "all" {
		kinds := make([]Kind, len(All))
		copy(kinds, All)
		return kinds, nil
	}

	for _, k := range All {
		if selection == string(k) {
			return []Kind{k}, nil
		}
	}

	names := make([]string, 0, len(All)+1)
	for _, k := range All {
		names = append(names, string(k))
	}
	names = append(names, "all")
	return nil, fmt.Errorf("%w %q, valid selections: %s", ErrUnknownReport, selection, strings.Join(names, ", "))
}
