package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientAdd,
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	Args:  cobra.NoArgs,
	RunE:  runClientList,
}

func init() {
	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	_, s := openStore()

	name := args[0]
	if err := s.AddClient(name); err != nil {
		return err
	}
	fmt.Printf("Added client: %s\n", name)
	return nil
}

func runClientList(cmd *cobra.Command, args []string) error {
	_, s := openStore()

	clients := s.Clients()
	if len(clients) == 0 {
		fmt.Println("No clients added yet.")
		return nil
	}
	for _, name := range clients {
		fmt.Println(name)
	}
	return nil
}
