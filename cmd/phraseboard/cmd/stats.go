package cmd

import (
	"fmt"
	"sort"

	"github.com/corey/phraseboard/internal/ports"
	"github.com/spf13/cobra"
)

const topAccepted = 5

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history and acceptance statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}

	log, err := application.Engine.Log(user)
	if err != nil {
		return err
	}
	exists, err := log.Exists()
	if err != nil {
		return err
	}
	count, err := log.Count()
	if err != nil {
		return err
	}
	accepted := application.Engine.Acceptances(user)

	fmt.Printf("%s⚡ %s%s\n", colorBold, user, colorReset)
	fmt.Printf("  %-12s %s\n", "log", application.Paths.HistoryFile(user))
	if !exists {
		fmt.Printf("  %-12s %snot created yet%s\n", "", colorGray, colorReset)
	}
	fmt.Printf("  %-12s %d\n", "messages", count)
	fmt.Printf("  %-12s %d\n", "accepted", len(accepted))

	top := topPhrases(accepted, topAccepted)
	if len(top) > 0 {
		fmt.Printf("\n%sMost accepted%s\n", colorBold, colorReset)
		for _, pc := range top {
			fmt.Printf("  %s%4d%s  %s\n", colorMagenta, pc.count, colorReset, pc.phrase)
		}
	}
	return nil
}

type phraseCount struct {
	phrase string
	count  int
}

// topPhrases counts acceptances per phrase and returns the n most accepted,
// ties broken by the phrase first accepted.
func topPhrases(accepted []ports.Acceptance, n int) []phraseCount {
	idx := make(map[string]int)
	var counts []phraseCount
	for _, a := range accepted {
		i, ok := idx[a.Phrase]
		if !ok {
			i = len(counts)
			idx[a.Phrase] = i
			counts = append(counts, phraseCount{phrase: a.Phrase})
		}
		counts[i].count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
