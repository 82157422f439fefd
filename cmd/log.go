package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexhour/lexhour/internal/model"
	"github.com/lexhour/lexhour/internal/report"
)

var logDate string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the daily time log",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Date as YYYY-MM-DD (default today)")
}

func runLog(cmd *cobra.Command, args []string) error {
	date := today()
	if logDate != "" {
		var err error
		date, err = parseDate(logDate)
		if err != nil {
			return err
		}
	}

	_, s := openStore()

	entries := s.EntriesOn(date)
	if len(entries) == 0 {
		fmt.Println("No entries for selected date.")
		return nil
	}

	fmt.Println(date)
	printEntries(entries)
	fmt.Printf("Total Hours: %.2f\n", report.TotalHours(entries))
	return nil
}

// printEntries renders entries as one line each: duration, client,
// matter and narrative.
func printEntries(entries []model.TimeEntry) {
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s / %s", e.Duration, e.Client, e.Matter)
		if e.Narrative != "" {
			line += "  – " + e.Narrative
		}
		fmt.Println(line)
	}
}
