// Package report aggregates time entries into billing summaries.
// It performs no I/O; callers filter entries by date range first.
package report

import (
	"github.com/lexhour/lexhour/internal/duration"
	"github.com/lexhour/lexhour/internal/model"
)

// ClientMatter keys a summary grouped by client and matter.
type ClientMatter struct {
	Client string
	Matter string
}

// TotalHours sums the entries' durations as fractional hours.
func TotalHours(entries []model.TimeEntry) float64 {
	var minutes int
	for _, e := range entries {
		minutes += e.Duration.TotalMinutes()
	}
	return duration.Hours(minutes)
}

// ByClient groups entries by client and totals each group's hours.
func ByClient(entries []model.TimeEntry) map[string]float64 {
	minutes := map[string]int{}
	for _, e := range entries {
		minutes[e.Client] += e.Duration.TotalMinutes()
	}
	totals := make(map[string]float64, len(minutes))
	for client, m := range minutes {
		totals[client] = duration.Hours(m)
	}
	return totals
}

// ByClientMatter groups entries by (client, matter) and totals each
// group's hours.
func ByClientMatter(entries []model.TimeEntry) map[ClientMatter]float64 {
	minutes := map[ClientMatter]int{}
	for _, e := range entries {
		minutes[ClientMatter{Client: e.Client, Matter: e.Matter}] += e.Duration.TotalMinutes()
	}
	totals := make(map[ClientMatter]float64, len(minutes))
	for key, m := range minutes {
		totals[key] = duration.Hours(m)
	}
	return totals
}
