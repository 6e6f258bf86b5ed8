package app

import (
	"errors"
	"io"
	"math"
	"strings"
	"time"

	"github.com/corey/phraseboard/internal/domain/history"
	"github.com/corey/phraseboard/internal/domain/ranker"
	"github.com/corey/phraseboard/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Engine is the surface the board UI calls. Every method is keyed by user
// id, performs its I/O synchronously, and never returns an error: failures
// are logged and turned into false or an empty result, which the UI shows as
// "nothing to show". Callers that need the error use Log directly.
type Engine struct {
	history     ports.HistoryStore
	fallback    ports.HistoryStore    // optional: read when history is empty
	acceptances ports.AcceptanceStore // optional
	ranker      *ranker.Ranker
	logger      logrus.FieldLogger
	now         func() time.Time
	newID       func() string
}

// Deps are the collaborators of an Engine. History and Ranker are required.
type Deps struct {
	History     ports.HistoryStore
	Fallback    ports.HistoryStore
	Acceptances ports.AcceptanceStore
	Ranker      *ranker.Ranker
	Logger      logrus.FieldLogger // default: discard
	Now         func() time.Time   // default: time.Now
}

// NewEngine wires an Engine from deps.
func NewEngine(deps Deps) *Engine {
	e := &Engine{
		history:     deps.History,
		fallback:    deps.Fallback,
		acceptances: deps.Acceptances,
		ranker:      deps.Ranker,
		logger:      deps.Logger,
		now:         deps.Now,
		newID:       uuid.NewString,
	}
	if e.ranker == nil {
		e.ranker = ranker.New(ranker.DefaultConfig())
	}
	if e.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.logger = l
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Log returns userID's history log over the engine's store. Unparseable
// timestamps found while loading are logged as warnings.
func (e *Engine) Log(userID string) (*history.Log, error) {
	return e.openLog(e.history, userID)
}

func (e *Engine) openLog(store ports.HistoryStore, userID string) (*history.Log, error) {
	logger := e.logger.WithField("user_id", userID)
	return history.NewLog(store, userID,
		history.WithClock(e.now),
		history.WithWarnings(func(lineNo int, line string, err error) {
			logger.WithFields(logFields(err)).WithField("line_no", lineNo).
				WithError(err).Warn("history line has no usable timestamp")
		}),
	)
}

// Append logs message for userID. Returns false, without writing, for blank
// messages, invalid users and write failures.
func (e *Engine) Append(userID, message string) bool {
	l, err := e.Log(userID)
	if err != nil {
		e.fail(userID, err, "cannot open history")
		return false
	}
	if err := l.Append(message); err != nil {
		if errors.Is(err, history.ErrEmptyMessage) {
			e.logger.WithField("user_id", userID).Debug("ignored empty message")
			return false
		}
		e.fail(userID, err, "message not saved")
		return false
	}
	return true
}

// GetSuggestions ranks userID's history and returns at most maxResults
// suggestions. The whole history is re-read and re-scored on every call.
func (e *Engine) GetSuggestions(userID string, maxResults int) []ranker.Suggestion {
	entries := e.entries(userID)
	if len(entries) == 0 {
		return nil
	}
	return e.ranker.Rank(entries, maxResults, e.now())
}

// CompleteSuggestions ranks userID's history and returns at most
// maxResults suggestions whose phrase fuzzy-matches typed, the text entered
// so far. Blank typed behaves like GetSuggestions.
func (e *Engine) CompleteSuggestions(userID, typed string, maxResults int) []ranker.Suggestion {
	if strings.TrimSpace(typed) == "" {
		return e.GetSuggestions(userID, maxResults)
	}
	if maxResults <= 0 {
		return nil
	}
	entries := e.entries(userID)
	if len(entries) == 0 {
		return nil
	}
	matched := ranker.Filter(e.ranker.Rank(entries, math.MaxInt, e.now()), typed)
	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}
	return matched
}

// RecordSuggestionUsed notes that userID accepted phrase. It logs the
// acceptance and, when an acceptance store is configured, persists it.
// Failures are logged and never reach the caller. Acceptances do not feed
// back into scoring.
func (e *Engine) RecordSuggestionUsed(userID, phrase string) {
	phrase = strings.TrimSpace(phrase)
	logger := e.logger.WithFields(logrus.Fields{"user_id": userID, "phrase": phrase})
	if err := history.ValidateUserID(userID); err != nil {
		logger.WithError(err).Warn("suggestion acceptance ignored")
		return
	}
	if phrase == "" {
		logger.Debug("ignored empty suggestion acceptance")
		return
	}
	logger.Info("suggestion accepted")

	if e.acceptances == nil {
		return
	}
	a := ports.Acceptance{
		ID:         e.newID(),
		UserID:     userID,
		Phrase:     phrase,
		AcceptedAt: e.now(),
	}
	if err := e.acceptances.RecordAcceptance(a); err != nil {
		logger.WithFields(logFields(err)).WithError(err).Warn("suggestion acceptance not persisted")
	}
}

// ClearHistory deletes userID's history log. Recorded acceptances are
// removed too, best-effort. Returns true when the log is gone, including
// when it never existed.
func (e *Engine) ClearHistory(userID string) bool {
	l, err := e.Log(userID)
	if err != nil {
		e.fail(userID, err, "cannot open history")
		return false
	}
	if err := l.Clear(); err != nil {
		e.fail(userID, err, "history not cleared")
		return false
	}
	if e.acceptances != nil {
		if err := e.acceptances.DeleteUser(userID); err != nil {
			e.logger.WithFields(logFields(err)).WithField("user_id", userID).
				WithError(err).Warn("acceptances not cleared")
		}
	}
	e.logger.WithField("user_id", userID).Info("history cleared")
	return true
}

// RecentMessages returns userID's messages from the last hours hours.
func (e *Engine) RecentMessages(userID string, hours int) []string {
	l, err := e.Log(userID)
	if err != nil {
		e.fail(userID, err, "cannot open history")
		return nil
	}
	msgs, err := l.RecentMessages(hours)
	if err != nil {
		e.fail(userID, err, "history not loaded")
		return nil
	}
	return msgs
}

// Acceptances returns userID's recorded acceptances, oldest first.
func (e *Engine) Acceptances(userID string) []ports.Acceptance {
	if e.acceptances == nil {
		return nil
	}
	if err := history.ValidateUserID(userID); err != nil {
		e.fail(userID, err, "cannot load acceptances")
		return nil
	}
	out, err := e.acceptances.LoadAcceptances(userID)
	if err != nil {
		e.fail(userID, err, "acceptances not loaded")
		return nil
	}
	return out
}

// entries loads userID's history, falling back to the fallback store when
// the primary log has no entries.
func (e *Engine) entries(userID string) []history.Entry {
	entries := e.load(e.history, userID)
	if len(entries) == 0 && e.fallback != nil {
		entries = e.load(e.fallback, userID)
		if len(entries) > 0 {
			e.logger.WithField("user_id", userID).WithField("entries", len(entries)).
				Debug("ranking from profile history")
		}
	}
	return entries
}

func (e *Engine) load(store ports.HistoryStore, userID string) []history.Entry {
	l, err := e.openLog(store, userID)
	if err != nil {
		e.fail(userID, err, "cannot open history")
		return nil
	}
	entries, err := l.LoadAll()
	if err != nil {
		e.fail(userID, err, "history not loaded")
		return nil
	}
	return entries
}

func (e *Engine) fail(userID string, err error, msg string) {
	e.logger.WithFields(logFields(err)).WithField("user_id", userID).WithError(err).Error(msg)
}
