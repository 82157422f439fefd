package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matterCmd = &cobra.Command{
	Use:   "matter",
	Short: "Manage matters",
}

var matterAddCmd = &cobra.Command{
	Use:   "add <client> <name>",
	Short: "Add a new matter for a client",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatterAdd,
}

var matterListCmd = &cobra.Command{
	Use:   "list <client>",
	Short: "List a client's matters",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatterList,
}

func init() {
	matterCmd.AddCommand(matterAddCmd)
	matterCmd.AddCommand(matterListCmd)
}

func runMatterAdd(cmd *cobra.Command, args []string) error {
	_, s := openStore()

	clientName, matterName := args[0], args[1]
	if err := s.AddMatter(clientName, matterName); err != nil {
		return err
	}
	fmt.Printf("Added matter: %s for client: %s\n", matterName, clientName)
	return nil
}

func runMatterList(cmd *cobra.Command, args []string) error {
	_, s := openStore()

	matters := s.Matters(args[0])
	if len(matters) == 0 {
		fmt.Println("No matters added yet for this client.")
		return nil
	}
	for _, name := range matters {
		fmt.Println(name)
	}
	return nil
}
