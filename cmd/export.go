package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lexhour/lexhour/internal/model"
	"github.com/lexhour/lexhour/internal/store"
)

var (
	exportFrom   string
	exportTo     string
	exportClient string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export time entries for a date range to a CSV file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start date as YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End date as YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportClient, "client", "", "Restrict the export to one client")
	_ = exportCmd.MarkFlagRequired("from")
	_ = exportCmd.MarkFlagRequired("to")
}

func runExport(cmd *cobra.Command, args []string) error {
	from, to, err := parseRange(exportFrom, exportTo)
	if err != nil {
		return err
	}

	cfg, s := openStore()

	var entries []model.TimeEntry
	if exportClient != "" {
		entries = s.EntriesForClient(exportClient, from, to)
	} else {
		entries = s.EntriesBetween(from, to)
	}
	if len(entries) == 0 {
		fmt.Println("No entries found for selected date range.")
		return nil
	}

	path := filepath.Join(cfg.ExportDir, store.ExportFileName(exportClient))
	if err := store.WriteEntriesFile(path, entries); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Data exported to %s\n", path)
	return nil
}
