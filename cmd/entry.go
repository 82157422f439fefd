package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexhour/lexhour/internal/duration"
	"github.com/lexhour/lexhour/internal/model"
)

var (
	entryClient    string
	entryMatter    string
	entryDuration  string
	entryNarrative string
	entryDate      string
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Record time entries",
}

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a time entry",
	Args:  cobra.NoArgs,
	RunE:  runEntryAdd,
}

func init() {
	entryAddCmd.Flags().StringVar(&entryClient, "client", "", "Client name")
	entryAddCmd.Flags().StringVar(&entryMatter, "matter", "", "Matter name")
	entryAddCmd.Flags().StringVar(&entryDuration, "duration", "", "Billed time as HH:MM")
	entryAddCmd.Flags().StringVar(&entryNarrative, "narrative", "", "Description of work performed")
	entryAddCmd.Flags().StringVar(&entryDate, "date", "", "Entry date as YYYY-MM-DD (default today)")
	_ = entryAddCmd.MarkFlagRequired("client")
	_ = entryAddCmd.MarkFlagRequired("matter")
	_ = entryAddCmd.MarkFlagRequired("duration")

	entryCmd.AddCommand(entryAddCmd)
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	d, err := duration.Parse(entryDuration)
	if err != nil {
		return err
	}

	date := today()
	if entryDate != "" {
		date, err = parseDate(entryDate)
		if err != nil {
			return err
		}
	}

	_, s := openStore()

	entry := model.TimeEntry{
		Date:      date,
		Client:    entryClient,
		Matter:    entryMatter,
		Duration:  d,
		Narrative: entryNarrative,
	}
	if err := s.AddTimeEntry(entry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println("Time entry added successfully.")
	return nil
}
