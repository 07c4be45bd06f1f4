package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"strava-insights/internal/activity"
)

// Load reads a Strava activities export and returns every row that
// survives normalization, in file order. Rows that fail are logged and
// skipped; a bad row never aborts the load.
func Load(r io.Reader) activity.Collection {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		slog.Error("export has no readable header", slog.Any("error", err))
		return nil
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var col activity.Collection
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn("skipping unreadable line", slog.Any("error", err))
			continue
		}
		if a, ok := normalize(row{index: index, fields: fields}); ok {
			col = append(col, a)
		}
	}
	return col
}

// LoadFile loads the export at path. An unreadable file is an error,
// not an empty collection; callers must not mistake it for a valid
// export with zero activities.
func LoadFile(path string) (activity.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", path, err)
	}
	defer f.Close()
	return Load(f), nil
}

// normalize runs normalizeRow under a recover so a malformed row, or a
// bug tripped by one, downgrades to a logged skip.
func normalize(r row) (a activity.Activity, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			slog.Warn("skipping activity", slog.String("activity", r.displayName()), slog.Any("panic", p))
			a, ok = activity.Activity{}, false
		}
	}()

	a, err := normalizeRow(r)
	if err != nil {
		slog.Warn("skipping activity", slog.String("activity", r.displayName()), slog.Any("error", err))
		return activity.Activity{}, false
	}
	return a, true
}
