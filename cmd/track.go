package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexhour/lexhour/internal/duration"
	"github.com/lexhour/lexhour/internal/model"
	"github.com/lexhour/lexhour/internal/timer"
)

var (
	trackClient string
	trackMatter string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Run a timer and record the elapsed time as an entry",
	Long: `track starts a timer for a client and matter, stops it when you
press Enter, and records a time entry with the elapsed time as the
default duration. The timer lives only for this session; nothing is
persisted until the entry is submitted.`,
	Args: cobra.NoArgs,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackClient, "client", "", "Client name")
	trackCmd.Flags().StringVar(&trackMatter, "matter", "", "Matter name")
	_ = trackCmd.MarkFlagRequired("client")
	_ = trackCmd.MarkFlagRequired("matter")
}

func runTrack(cmd *cobra.Command, args []string) error {
	_, s := openStore()
	in := bufio.NewReader(cmd.InOrStdin())

	tm := timer.New()
	tm.Start()
	fmt.Printf("Timer running for %s / %s. Press Enter to stop.\n", trackClient, trackMatter)
	if _, err := in.ReadString('\n'); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	tm.Stop()

	defaultDur := duration.FromMinutes(int(tm.Elapsed().Minutes()))
	fmt.Printf("Duration (HH:MM) [%s]: ", defaultDur)
	durText, err := readLine(in)
	if err != nil {
		return err
	}
	if durText == "" {
		durText = defaultDur.String()
	}
	d, err := duration.Parse(durText)
	if err != nil {
		return err
	}

	fmt.Print("Narrative: ")
	narrative, err := readLine(in)
	if err != nil {
		return err
	}

	entry := model.TimeEntry{
		Date:      today(),
		Client:    trackClient,
		Matter:    trackMatter,
		Duration:  d,
		Narrative: narrative,
	}
	if err := s.AddTimeEntry(entry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Submitting the entry consumes the timer's value.
	tm.Reset()

	fmt.Printf("Time entry added successfully (%s).\n", d)
	return nil
}

// readLine reads one trimmed line, treating EOF after input as a
// normal end of line.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
