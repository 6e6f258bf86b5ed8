package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCount int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-print suggestions whenever the history changes",
	Long:  "Prints suggestions, then prints them again each time the user's history log is written. Stops on Ctrl-C.",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().IntVarP(&watchCount, "count", "n", 0, "Maximum suggestions (default $PHRASEBOARD_SUGGESTIONS)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}
	n := watchCount
	if n <= 0 {
		n = application.Config.Suggestions
	}

	show := func() {
		fmt.Print(formatSuggestions(user, application.Engine.GetSuggestions(user, n)))
	}

	w, err := application.WatchHistory(user, func() {
		fmt.Println()
		show()
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	show()
	fmt.Printf("%swatching %s (Ctrl-C to stop)%s\n", colorGray, application.Paths.HistoryFile(user), colorReset)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	signal.Stop(sigCh)
	fmt.Println()
	return nil
}
