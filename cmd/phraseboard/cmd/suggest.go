package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	suggestCount int
	suggestJSON  bool
	suggestTyped string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show ranked phrase suggestions",
	Long:  "Ranks phrases from the user's history by frequency, recency and time of day.",
	Args:  cobra.NoArgs,
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestCount, "count", "n", 0, "Maximum suggestions (default $PHRASEBOARD_SUGGESTIONS)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Print suggestions as JSON")
	suggestCmd.Flags().StringVarP(&suggestTyped, "typed", "t", "", "Only phrases matching the text typed so far")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}
	n := suggestCount
	if n <= 0 {
		n = application.Config.Suggestions
	}

	suggestions := application.Engine.CompleteSuggestions(user, suggestTyped, n)
	if suggestJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}
	fmt.Print(formatSuggestions(user, suggestions))
	return nil
}
