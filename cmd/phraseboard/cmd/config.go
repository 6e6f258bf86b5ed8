package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print resolved paths and settings",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := application.Config
	p := application.Paths
	rcfg := application.Ranker.Config()

	fmt.Printf("%sPaths%s\n", colorBold, colorReset)
	fmt.Printf("  %-18s %s\n", "home", p.Home)
	fmt.Printf("  %-18s %s\n", "history", p.HistoryDir)
	fmt.Printf("  %-18s %s\n", "profiles", p.ProfilesDir)
	fmt.Printf("  %-18s %s\n", "database", p.DB)
	if userFlag != "" {
		fmt.Printf("  %-18s %s\n", "log", p.HistoryFile(userFlag))
	}

	fmt.Printf("\n%sSettings%s\n", colorBold, colorReset)
	fmt.Printf("  %-18s %s\n", "log level", cfg.LogLevel)
	fmt.Printf("  %-18s %s\n", "log format", cfg.LogFormat)
	fmt.Printf("  %-18s %s\n", "recency", rcfg.Recency)
	fmt.Printf("  %-18s %d\n", "recent window", rcfg.RecentWindow)
	fmt.Printf("  %-18s %d\n", "suggestions", cfg.Suggestions)
	fmt.Printf("  %-18s %t\n", "profile fallback", cfg.ProfileFallback)
	fmt.Printf("  %-18s %t\n", "record accepted", cfg.RecordAcceptances)
	return nil
}
