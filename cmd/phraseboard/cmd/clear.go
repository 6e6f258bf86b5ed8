package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the user's message history",
	Long:  "Deletes the user's history log and recorded acceptances. Profile files are never touched.",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "Skip confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}

	if !clearForce {
		fmt.Printf("⚠ This will delete all history for %s. Continue? [y/N] ", user)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	if !application.Engine.ClearHistory(user) {
		return fmt.Errorf("history for %s not cleared (see log)", user)
	}
	fmt.Println("⚡ history cleared")
	return nil
}
