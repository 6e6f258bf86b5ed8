package ranker

import "fmt"

// Suggestion is one ranked phrase. Score and Reason are computed together
// from the same history on every ranking call and are never persisted.
type Suggestion struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`

	// Breakdown of Score. Score == FrequencyWeight*Frequency +
	// RecencyWeight*Recency + TimeBonus.
	Frequency float64 `json:"frequency"`
	Recency   float64 `json:"recency"`
	TimeBonus float64 `json:"time_bonus"`

	// Uses is the number of messages containing Phrase.
	Uses int `json:"uses"`
}

// String returns "phrase (Score: s, Reason: r)".
func (s Suggestion) String() string {
	return fmt.Sprintf("%s (Score: %.1f, Reason: %s)", s.Phrase, s.Score, s.Reason)
}
