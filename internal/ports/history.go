package ports

import "time"

// HistoryStore persists raw log lines for one user at a time.
// The line format belongs to the domain (internal/domain/history); a store
// only appends, returns and deletes lines. Implementations must preserve
// write order.
//
// There is no locking discipline across processes: two writers appending to
// the same user's log may interleave. One UI process per user is assumed.
type HistoryStore interface {
	// AppendLine appends one line (without terminator) to the user's log,
	// creating the backing storage on first write.
	AppendLine(userID, line string) error

	// ReadLines returns every stored line in write order.
	// Returns nil, nil if the user has no log yet.
	ReadLines(userID string) ([]string, error)

	// Delete removes the user's whole log.
	// Idempotent: deleting a missing log is not an error.
	Delete(userID string) error

	// Exists reports whether the user's log is present.
	Exists(userID string) (bool, error)
}

// Acceptance records that a user picked a ranked suggestion.
// Acceptances are kept for caregivers and statistics only; the ranker
// never reads them back.
type Acceptance struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Phrase     string    `json:"phrase"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// AcceptanceStore persists accepted suggestions per user.
type AcceptanceStore interface {
	// RecordAcceptance appends an acceptance to the user's record.
	RecordAcceptance(a Acceptance) error

	// LoadAcceptances returns the user's acceptances, oldest first.
	// Returns nil, nil if none were recorded.
	LoadAcceptances(userID string) ([]Acceptance, error)

	// DeleteUser removes all acceptances of a user. Idempotent.
	DeleteUser(userID string) error
}
