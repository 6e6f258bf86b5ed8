package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var acceptCmd = &cobra.Command{
	Use:   "accept <phrase...>",
	Short: "Record that a suggestion was used",
	Long:  "Records an accepted suggestion. Acceptances are kept for statistics and do not change scores.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAccept,
}

func runAccept(cmd *cobra.Command, args []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}
	phrase := strings.TrimSpace(strings.Join(args, " "))
	application.Engine.RecordSuggestionUsed(user, phrase)
	fmt.Printf("⚡ accepted: %s\n", phrase)
	return nil
}
