package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexhour/lexhour/internal/config"
	"github.com/lexhour/lexhour/internal/model"
	"github.com/lexhour/lexhour/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lexhour",
	Short: "Legal time tracker – bill time against clients and matters",
	Long: `lexhour is a single-binary, file-based legal time tracker.
Staff record billable time against clients and matters, review daily
logs, run summary reports and export data; clients log in separately to
view their own billed time. All data is stored as CSV files under
~/.lexhour/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(matterCmd)
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(portalCmd)
}

// openStore loads the configuration and opens the record store,
// exiting on a storage fault.
func openStore() (config.Config, *store.Store) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	s, err := store.Open(cfg.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg, s
}

// parseDate validates a YYYY-MM-DD date and returns its canonical form.
func parseDate(text string) (string, error) {
	t, err := time.Parse(model.DateFormat, text)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", text)
	}
	return t.Format(model.DateFormat), nil
}

// today returns the current date in canonical form.
func today() string {
	return time.Now().Format(model.DateFormat)
}
