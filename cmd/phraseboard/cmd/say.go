package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sayCmd = &cobra.Command{
	Use:   "say <message...>",
	Short: "Log a composed message",
	Long:  "Appends the message, stamped with the current time, to the user's history.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSay,
}

func runSay(cmd *cobra.Command, args []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}
	msg := strings.Join(args, " ")
	if !application.Engine.Append(user, msg) {
		return fmt.Errorf("message not saved (empty message or write failure; see log)")
	}
	fmt.Printf("⚡ saved: %s\n", strings.TrimSpace(msg))
	return nil
}
