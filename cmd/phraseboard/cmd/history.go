package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyRecent int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the user's message history",
	Long:  "Prints every logged entry, oldest first. With --recent, prints only messages from the last HOURS hours.",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyRecent, "recent", 0, "Only messages from the last HOURS hours")
}

func runHistory(cmd *cobra.Command, args []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("recent") {
		fmt.Print(formatMessages(historyRecent, application.Engine.RecentMessages(user, historyRecent)))
		return nil
	}

	log, err := application.Engine.Log(user)
	if err != nil {
		return err
	}
	entries, err := log.LoadAll()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("⚡ no history for %s\n", user)
		return nil
	}
	fmt.Print(formatEntries(entries))
	return nil
}
