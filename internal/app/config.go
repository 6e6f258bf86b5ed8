package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/corey/phraseboard/internal/domain/ranker"
	"github.com/m-mizutani/goerr/v2"
)

// Config holds engine settings. Environment variables (PHRASEBOARD_*)
// provide defaults; the CLI overrides them with flags.
type Config struct {
	// Home is the data root holding history/, profiles/ and the acceptance DB.
	// Empty resolves to ~/.phraseboard.
	Home string `env:"PHRASEBOARD_HOME"`

	// Logging
	LogLevel  string `env:"PHRASEBOARD_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"PHRASEBOARD_LOG_FORMAT" envDefault:"text"` // "text" or "json"

	// Ranking
	RecencyMode  string `env:"PHRASEBOARD_RECENCY_MODE" envDefault:"position"` // "position" or "legacy"
	RecentWindow int    `env:"PHRASEBOARD_RECENT_WINDOW" envDefault:"10"`
	Suggestions  int    `env:"PHRASEBOARD_SUGGESTIONS" envDefault:"5"`

	// ProfileFallback ranks from the legacy profile's "Message:" lines when
	// the user has no history log entries.
	ProfileFallback bool `env:"PHRASEBOARD_PROFILE_FALLBACK" envDefault:"false"`

	// RecordAcceptances persists accepted suggestions to the bbolt DB.
	RecordAcceptances bool `env:"PHRASEBOARD_RECORD_ACCEPTANCES" envDefault:"true"`
}

// LoadConfig reads the environment into a Config and resolves Home.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config")
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RankerConfig converts the ranking settings.
func (c *Config) RankerConfig() (ranker.Config, error) {
	mode, err := ranker.ParseRecencyMode(c.RecencyMode)
	if err != nil {
		return ranker.Config{}, goerr.Wrap(err, "invalid PHRASEBOARD_RECENCY_MODE")
	}
	return ranker.Config{Recency: mode, RecentWindow: c.RecentWindow}, nil
}

// Validate checks settings that env parsing cannot.
func (c *Config) Validate() error {
	if _, err := c.RankerConfig(); err != nil {
		return err
	}
	if c.Suggestions < 0 {
		return goerr.New("suggestion count must not be negative", goerr.V("suggestions", c.Suggestions))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return goerr.New(fmt.Sprintf("unknown log format %q (want text or json)", c.LogFormat))
	}
	return nil
}

// resolve fills Home with ~/.phraseboard when unset and makes it absolute.
func (c *Config) resolve() error {
	if c.Home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return goerr.Wrap(err, "failed to resolve user home")
		}
		c.Home = filepath.Join(homeDir, ".phraseboard")
	}
	if abs, err := filepath.Abs(c.Home); err == nil {
		c.Home = abs
	}
	return nil
}
