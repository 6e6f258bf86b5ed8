package cmd

import (
	"fmt"
	"os"

	"github.com/corey/phraseboard/internal/app"
	"github.com/corey/phraseboard/internal/domain/history"
	"github.com/spf13/cobra"
)

var (
	homeFlag     string
	userFlag     string
	logLevelFlag string
)

// application is built once per invocation by the root pre-run hook.
var application *app.App

var rootCmd = &cobra.Command{
	Use:   "phraseboard",
	Short: "phraseboard: message history and phrase suggestions",
	Long: "Logs messages composed on the board per user and ranks the phrases to offer\n" +
		"as quick suggestions by frequency, recency and time of day.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "Data directory (default $PHRASEBOARD_HOME or ~/.phraseboard)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User whose history to use")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads config from the environment, applies flag overrides, and
// wires the application.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	if homeFlag != "" {
		cfg.Home = homeFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	logger, err := app.NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	application, err = app.New(cfg, logger)
	return err
}

// requireUser returns the --user value, checked for use as a file name.
func requireUser() (string, error) {
	if userFlag == "" {
		return "", fmt.Errorf("--user is required")
	}
	if err := history.ValidateUserID(userFlag); err != nil {
		return "", err
	}
	return userFlag, nil
}
