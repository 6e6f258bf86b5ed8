// Package history implements the per-user message log: the entry model, the
// line format it is stored in, and the append-only log built on top of a
// ports.HistoryStore.
//
// Log line format (one entry per line, UTF-8):
//
//	yyyy/MM/dd HH:mm:ss | <message text>
//
// Lines that do not match are still read as message-only entries, which
// keeps files from older writers (including the "Message: " profile
// encoding) readable.
package history

import "time"

// Entry is one logged message. Entries are values: they are rebuilt on every
// load and never mutated.
type Entry struct {
	// Timestamp is when the message was logged, in local wall-clock time.
	// Zero if the stored line had no parseable timestamp.
	Timestamp time.Time

	// Message is the trimmed, non-empty message text.
	Message string
}

// HasTimestamp reports whether the entry carries a timestamp.
func (e Entry) HasTimestamp() bool {
	return !e.Timestamp.IsZero()
}

// Hour returns the hour of day (0-23), or -1 without a timestamp.
func (e Entry) Hour() int {
	if !e.HasTimestamp() {
		return -1
	}
	return e.Timestamp.Hour()
}

// DateString returns the date as "yyyy/MM/dd", or "" without a timestamp.
func (e Entry) DateString() string {
	if !e.HasTimestamp() {
		return ""
	}
	return e.Timestamp.Format(dateLayout)
}

// TimeString returns the time as "HH:mm:ss", or "" without a timestamp.
func (e Entry) TimeString() string {
	if !e.HasTimestamp() {
		return ""
	}
	return e.Timestamp.Format(clockLayout)
}

// DayOfWeek returns the English weekday name, or "" without a timestamp.
func (e Entry) DayOfWeek() string {
	if !e.HasTimestamp() {
		return ""
	}
	return e.Timestamp.Weekday().String()
}

// IsToday reports whether the entry was logged on the same calendar day as now.
func (e Entry) IsToday(now time.Time) bool {
	if !e.HasTimestamp() {
		return false
	}
	y1, m1, d1 := e.Timestamp.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysSince returns the number of calendar days between the entry's date and
// now's date, or -1 without a timestamp. Time of day is ignored, so an entry
// from 23:59 yesterday is 1 day old at 00:01.
func (e Entry) DaysSince(now time.Time) int {
	if !e.HasTimestamp() {
		return -1
	}
	return int(civilDay(now).Sub(civilDay(e.Timestamp)).Hours() / 24)
}

// String returns the entry in log-line form, or just the message when there
// is no timestamp.
func (e Entry) String() string {
	if !e.HasTimestamp() {
		return e.Message
	}
	return FormatLine(e.Timestamp, e.Message)
}

// civilDay maps t to midnight UTC of its calendar date so day differences
// are not skewed by DST transitions.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
