package store

import "github.com/lexhour/lexhour/internal/model"

// ExportFileName returns the deterministic export file name: the
// per-client name when clientName is set, the full-report name otherwise.
func ExportFileName(clientName string) string {
	if clientName == "" {
		return "time_entries_export.csv"
	}
	return "time_entries_" + clientName + ".csv"
}

// WriteEntriesFile writes entries to a new CSV file at path using the
// time-entries schema.
func WriteEntriesFile(path string, entries []model.TimeEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryRow(e))
	}
	return writeCSV(path, entriesHeader, rows)
}
