package history

import (
	"errors"
	"strings"
	"time"

	"github.com/corey/phraseboard/internal/ports"
	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrEmptyMessage is returned by Append for empty or whitespace-only input.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrInvalidUser is returned for user ids that cannot name a log.
	ErrInvalidUser = errors.New("invalid user id")
)

// lineBreaks flattens embedded line breaks so one message stays one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// ValidateUserID checks that id can safely name per-user storage: non-empty,
// no path separators, not a relative directory reference.
func ValidateUserID(id string) error {
	switch {
	case strings.TrimSpace(id) == "", id == ".", id == "..":
		return goerr.Wrap(ErrInvalidUser, "user id is empty or reserved", goerr.V("user_id", id))
	case strings.ContainsAny(id, `/\`+"\x00"):
		return goerr.Wrap(ErrInvalidUser, "user id contains a path separator", goerr.V("user_id", id))
	}
	return nil
}

// WarningFunc receives non-fatal problems found while loading a log,
// such as a line whose timestamp could not be parsed.
type WarningFunc func(lineNo int, line string, err error)

// Log is one user's append-only message history.
// Every read goes back to the store; nothing is cached between calls.
// Thread safety: inherits the store's guarantees.
type Log struct {
	store  ports.HistoryStore
	userID string
	now    func() time.Time
	warn   WarningFunc
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides time.Now. Timestamps are written and parsed in the
// location of the returned times.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithWarnings installs a handler for non-fatal load problems.
func WithWarnings(fn WarningFunc) Option {
	return func(l *Log) { l.warn = fn }
}

// NewLog returns the log of userID backed by store.
func NewLog(store ports.HistoryStore, userID string, opts ...Option) (*Log, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	l := &Log{store: store, userID: userID, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// UserID returns the owner of the log.
func (l *Log) UserID() string {
	return l.userID
}

// Append stamps message with the current time and appends it.
// Returns ErrEmptyMessage, without writing, for blank input. A failed write
// is returned and the message is not retried.
func (l *Log) Append(message string) error {
	msg := strings.TrimSpace(lineBreaks.Replace(message))
	if msg == "" {
		return ErrEmptyMessage
	}
	if err := l.store.AppendLine(l.userID, FormatLine(l.now(), msg)); err != nil {
		return goerr.Wrap(err, "failed to append message", goerr.V("user_id", l.userID))
	}
	return nil
}

// LoadAll decodes every entry in file order (oldest first). A missing log is
// an empty history. Blank lines and lines without a message are skipped;
// unparseable timestamps are reported to the warning handler and the line is
// kept as a message-only entry.
func (l *Log) LoadAll() ([]Entry, error) {
	lines, err := l.store.ReadLines(l.userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read history", goerr.V("user_id", l.userID))
	}

	loc := l.now().Location()
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		e, ok, perr := ParseLine(line, loc)
		if perr != nil && l.warn != nil {
			l.warn(i+1, line, perr)
		}
		if ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// LoadMessages returns the messages of LoadAll, in order.
func (l *Log) LoadMessages() ([]string, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return Messages(entries), nil
}

// RecentMessages returns the messages logged strictly after now minus hours,
// in file order. Entries without a timestamp are never recent, and
// hours <= 0 yields nothing that was logged up to now.
func (l *Log) RecentMessages(hours int) ([]string, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	cutoff := l.now().Add(-time.Duration(hours) * time.Hour)

	var recent []string
	for _, e := range entries {
		if e.HasTimestamp() && e.Timestamp.After(cutoff) {
			recent = append(recent, e.Message)
		}
	}
	return recent, nil
}

// Clear deletes the whole log. Clearing a missing log succeeds.
func (l *Log) Clear() error {
	if err := l.store.Delete(l.userID); err != nil {
		return goerr.Wrap(err, "failed to clear history", goerr.V("user_id", l.userID))
	}
	return nil
}

// Count returns the number of entries LoadAll would return.
func (l *Log) Count() (int, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Exists reports whether the backing log is present.
func (l *Log) Exists() (bool, error) {
	ok, err := l.store.Exists(l.userID)
	if err != nil {
		return false, goerr.Wrap(err, "failed to stat history", goerr.V("user_id", l.userID))
	}
	return ok, nil
}

// Messages projects entries onto their message text.
func Messages(entries []Entry) []string {
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i] = e.Message
	}
	return msgs
}
