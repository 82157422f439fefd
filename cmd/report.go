package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lexhour/lexhour/internal/report"
)

var (
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show summary reports for a date range",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date as YYYY-MM-DD")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date as YYYY-MM-DD")
	_ = reportCmd.MarkFlagRequired("from")
	_ = reportCmd.MarkFlagRequired("to")
}

func runReport(cmd *cobra.Command, args []string) error {
	from, to, err := parseRange(reportFrom, reportTo)
	if err != nil {
		return err
	}

	_, s := openStore()

	entries := s.EntriesBetween(from, to)
	if len(entries) == 0 {
		fmt.Println("No entries found for selected date range.")
		return nil
	}

	fmt.Println("Summary by Client")
	byClient := report.ByClient(entries)
	clients := make([]string, 0, len(byClient))
	for c := range byClient {
		clients = append(clients, c)
	}
	sort.Strings(clients)
	for _, c := range clients {
		fmt.Printf("%-30s%8.2f\n", c, byClient[c])
	}

	fmt.Println()
	fmt.Println("Summary by Matter")
	byMatter := report.ByClientMatter(entries)
	keys := make([]report.ClientMatter, 0, len(byMatter))
	for k := range byMatter {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Client != keys[j].Client {
			return keys[i].Client < keys[j].Client
		}
		return keys[i].Matter < keys[j].Matter
	})
	for _, k := range keys {
		fmt.Printf("%-30s%8.2f\n", k.Client+" / "+k.Matter, byMatter[k])
	}

	fmt.Println()
	fmt.Printf("Total Hours: %.2f\n", report.TotalHours(entries))
	return nil
}

// parseRange validates both dates and rejects an inverted range before
// the store is consulted.
func parseRange(fromText, toText string) (from, to string, err error) {
	from, err = parseDate(fromText)
	if err != nil {
		return "", "", err
	}
	to, err = parseDate(toText)
	if err != nil {
		return "", "", err
	}
	if from > to {
		return "", "", fmt.Errorf("end date must be after start date")
	}
	return from, to, nil
}
