package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lexhour/lexhour/internal/auth"
	"github.com/lexhour/lexhour/internal/config"
	"github.com/lexhour/lexhour/internal/report"
	"github.com/lexhour/lexhour/internal/store"
)

var (
	portalFrom   string
	portalTo     string
	portalExport bool
)

var portalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Client portal: register logins and view billed time",
}

var portalRegisterCmd = &cobra.Command{
	Use:   "register <client> <username>",
	Short: "Register portal credentials for a client",
	Args:  cobra.ExactArgs(2),
	RunE:  runPortalRegister,
}

var portalViewCmd = &cobra.Command{
	Use:   "view <username>",
	Short: "Log in and view the client's own billed time",
	Args:  cobra.ExactArgs(1),
	RunE:  runPortalView,
}

func init() {
	portalViewCmd.Flags().StringVar(&portalFrom, "from", "", "Start date as YYYY-MM-DD")
	portalViewCmd.Flags().StringVar(&portalTo, "to", "", "End date as YYYY-MM-DD")
	portalViewCmd.Flags().BoolVar(&portalExport, "export", false, "Also export the entries to a CSV file")
	_ = portalViewCmd.MarkFlagRequired("from")
	_ = portalViewCmd.MarkFlagRequired("to")

	portalCmd.AddCommand(portalRegisterCmd)
	portalCmd.AddCommand(portalViewCmd)
}

func openVerifier() (*auth.Verifier, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return auth.Open(cfg.DataDir)
}

func runPortalRegister(cmd *cobra.Command, args []string) error {
	clientName, username := args[0], args[1]

	password, err := promptPassword(cmd)
	if err != nil {
		return err
	}

	v, err := openVerifier()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := v.Register(clientName, username, password); err != nil {
		return err
	}

	fmt.Println("Client registered successfully.")
	return nil
}

func runPortalView(cmd *cobra.Command, args []string) error {
	username := args[0]

	from, to, err := parseRange(portalFrom, portalTo)
	if err != nil {
		return err
	}

	password, err := promptPassword(cmd)
	if err != nil {
		return err
	}

	v, err := openVerifier()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	clientName, ok := v.Authenticate(username, password)
	if !ok {
		fmt.Fprintln(os.Stderr, "Invalid username or password.")
		os.Exit(1)
	}

	cfg, s := openStore()

	entries := s.EntriesForClient(clientName, from, to)
	if len(entries) == 0 {
		fmt.Println("No time entries found for the selected date range.")
		return nil
	}

	fmt.Printf("Client Portal – %s\n", clientName)
	fmt.Printf("Total Hours: %.2f\n", report.TotalHours(entries))
	fmt.Println("Time Entries")
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s  %s", e.Date, e.Duration, e.Matter)
		if e.Narrative != "" {
			line += "  – " + e.Narrative
		}
		fmt.Println(line)
	}

	if portalExport {
		path := filepath.Join(cfg.ExportDir, store.ExportFileName(clientName))
		if err := store.WriteEntriesFile(path, entries); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("Data exported to %s\n", path)
	}
	return nil
}

// promptPassword reads a password line from the command's input. The
// plaintext is passed straight to the verifier and never logged.
func promptPassword(cmd *cobra.Command) (string, error) {
	fmt.Print("Password: ")
	return readLine(bufio.NewReader(cmd.InOrStdin()))
}
