package domain

import (
	"slices"
	"time"
)

// Export defaults for the history share sheet.
const (
	ExportTitle    = "Export Timer History"
	ExportMessage  = "Here is my timer history!"
	ExportBaseName = "timer-history"
)

// ExportFormat is the serialization used for exported history.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
)

// IsValid returns true if the format is supported.
func (f ExportFormat) IsValid() bool {
	return f == ExportFormatJSON || f == ExportFormatYAML
}

// Filename returns the export filename for the format.
func (f ExportFormat) Filename() string {
	return ExportBaseName + "." + string(f)
}

// MimeType returns the content type of the format.
func (f ExportFormat) MimeType() string {
	if f == ExportFormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// HistoryGroup is the set of history records completed on one calendar day.
type HistoryGroup struct {
	Day     time.Time // Midnight of the day in the grouping location
	Records []HistoryRecord
}

// Title returns the section header for the group.
func (g HistoryGroup) Title() string {
	return g.Day.Format("2006-01-02")
}

// GroupHistoryByDay groups records by local calendar day, newest day first.
// Records keep their insertion order within a day.
func GroupHistoryByDay(history []HistoryRecord, loc *time.Location) []HistoryGroup {
	if loc == nil {
		loc = time.Local
	}
	var groups []HistoryGroup
	index := make(map[time.Time]int)
	for _, rec := range history {
		local := rec.CompletedAt.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, HistoryGroup{Day: day})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	slices.SortStableFunc(groups, func(a, b HistoryGroup) int {
		return b.Day.Compare(a.Day)
	})
	return groups
}
