package history

import (
	"errors"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// Separator splits the timestamp from the message in a log line.
	Separator = " | "

	// TimestampLayout is the stored timestamp pattern (yyyy/MM/dd HH:mm:ss).
	TimestampLayout = "2006/01/02 15:04:05"

	// LegacyPrefix marks message lines written by the profile writer.
	LegacyPrefix = "Message:"

	dateLayout  = "2006/01/02"
	clockLayout = "15:04:05"
)

// ErrBadTimestamp is reported (never returned as fatal) when the timestamp
// part of a line cannot be parsed. The line is still used as a message-only
// entry.
var ErrBadTimestamp = errors.New("unparseable timestamp")

// FormatLine renders one log line without a line terminator.
func FormatLine(ts time.Time, message string) string {
	return ts.Format(TimestampLayout) + Separator + message
}

// ParseLine decodes one raw log line. Timestamps are interpreted in loc
// (time.Local when nil).
//
// ok is false when the line carries no message (blank, or empty after the
// separator) and must be discarded. A non-nil err together with ok == true
// means the timestamp was unparseable: the entry is still valid, without a
// timestamp, and the error is only a warning for the caller to report.
func ParseLine(line string, loc *time.Location) (e Entry, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Entry{}, false, nil
	}
	if loc == nil {
		loc = time.Local
	}

	if rest, found := strings.CutPrefix(trimmed, LegacyPrefix); found {
		msg := strings.TrimSpace(rest)
		if _, after, hasSep := strings.Cut(msg, Separator); hasSep {
			msg = strings.TrimSpace(after)
		}
		if msg == "" {
			return Entry{}, false, nil
		}
		return Entry{Message: msg}, true, nil
	}

	before, after, hasSep := strings.Cut(line, Separator)
	if !hasSep {
		return Entry{Message: trimmed}, true, nil
	}

	msg := strings.TrimSpace(after)
	if msg == "" {
		return Entry{}, false, nil
	}

	raw := strings.TrimSpace(before)
	ts, perr := time.ParseInLocation(TimestampLayout, raw, loc)
	if perr != nil {
		return Entry{Message: msg}, true, goerr.Wrap(ErrBadTimestamp, "timestamp does not match "+TimestampLayout,
			goerr.V("timestamp", raw), goerr.V("cause", perr.Error()))
	}
	return Entry{Timestamp: ts, Message: msg}, true, nil
}
