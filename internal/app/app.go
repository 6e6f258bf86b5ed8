// Package app wires together adapters and domain logic.
// It resolves paths and configuration, opens the stores, and exposes the
// Engine the board UI and the CLI call.
package app

import (
	"os"

	"github.com/corey/phraseboard/internal/adapters/ahocorasick"
	fsw "github.com/corey/phraseboard/internal/adapters/fsnotify"
	"github.com/corey/phraseboard/internal/adapters/textfile"
	"github.com/corey/phraseboard/internal/domain/ranker"
	"github.com/corey/phraseboard/internal/ports"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sirupsen/logrus"
)

// App is the top-level container wiring all components together.
type App struct {
	Config *Config
	Paths  *Paths
	Logger *logrus.Logger
	Engine *Engine
	Ranker *ranker.Ranker

	History  *textfile.Store
	Profiles *textfile.ProfileStore
}

// New creates an App from cfg. Nothing is written to disk until the first
// append or acceptance.
func New(cfg *Config, logger *logrus.Logger) (*App, error) {
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rcfg, err := cfg.RankerConfig()
	if err != nil {
		return nil, err
	}

	paths := NewPaths(cfg.Home)
	a := &App{
		Config:   cfg,
		Paths:    paths,
		Logger:   logger,
		Ranker:   ranker.New(rcfg, ranker.WithMatcher(ahocorasick.Factory)),
		History:  textfile.NewStore(paths.HistoryDir),
		Profiles: textfile.NewProfileStore(paths.ProfilesDir),
	}

	deps := Deps{
		History: a.History,
		Ranker:  a.Ranker,
		Logger:  logger,
	}
	if cfg.ProfileFallback {
		deps.Fallback = a.Profiles
	}
	if cfg.RecordAcceptances {
		deps.Acceptances = &acceptanceDB{path: paths.DB}
	}
	a.Engine = NewEngine(deps)

	logger.WithFields(logrus.Fields{
		"home":    paths.Home,
		"recency": rcfg.Recency.String(),
		"window":  rcfg.RecentWindow,
	}).Debug("engine ready")
	return a, nil
}

// WatchHistory calls onChange whenever userID's history file changes.
// The history directory is created if needed so it can be watched before
// the first message is logged. The caller stops the returned watcher.
func (a *App) WatchHistory(userID string, onChange func()) (ports.HistoryWatcher, error) {
	if err := os.MkdirAll(a.Paths.HistoryDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create history dir", goerr.V("dir", a.Paths.HistoryDir))
	}
	w, err := fsw.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.OnError = func(err error) {
		a.Logger.WithField("user_id", userID).WithError(err).Warn("history watcher error")
	}
	if err := w.Watch(a.Paths.HistoryFile(userID), onChange); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}
