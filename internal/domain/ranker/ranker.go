// Package ranker turns a user's message history into ranked phrase
// suggestions.
//
// Candidates are the sentence fragments of every logged message (split on
// '.', trimmed, distinct). Each candidate gets a composite score:
//
//	score = 0.6*frequency + 0.4*recency + timeBonus
//
// frequency is 0-100 relative to the most repeated fragment, recency is a
// 0/30/70/100 tier from where the phrase was last used, and timeBonus adds 10
// when the phrase is mostly used in the current part of the day.
// Candidates are ranked by score with a stable sort.
package ranker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/corey/phraseboard/internal/domain/history"
	"github.com/corey/phraseboard/internal/ports"
)

// Scoring constants.
const (
	FrequencyWeight = 0.6
	RecencyWeight   = 0.4
	TimeOfDayBonus  = 10.0

	// TimeBonusMinUses is the fewest uses before the time bonus can apply.
	TimeBonusMinUses = 2
	// TimeBonusRatio is the share of uses that must fall in the current bucket.
	TimeBonusRatio = 0.6

	// DefaultRecentWindow is how many trailing messages count as "recent"
	// in reasons.
	DefaultRecentWindow = 10
)

// RecencyMode selects how the position of a phrase's last use is measured.
type RecencyMode int

const (
	// RecencyPosition uses the true index of the most recent message
	// containing the phrase: fraction = (index+1) / total, so the newest
	// message scores 1.0.
	RecencyPosition RecencyMode = iota

	// RecencyLegacy keeps the earlier board behavior, whose fraction is the
	// constant 1/total whenever the phrase occurs at all. Tiering then
	// depends only on history length: 100 for a single message, 70 for two,
	// 30 otherwise.
	RecencyLegacy
)

// String returns the mode name used in configuration.
func (m RecencyMode) String() string {
	switch m {
	case RecencyPosition:
		return "position"
	case RecencyLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseRecencyMode parses "position" or "legacy".
func ParseRecencyMode(s string) (RecencyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "position":
		return RecencyPosition, nil
	case "legacy":
		return RecencyLegacy, nil
	default:
		return 0, fmt.Errorf("unknown recency mode %q (want position or legacy)", s)
	}
}

// Config tunes the ranker.
type Config struct {
	Recency RecencyMode

	// RecentWindow is the number of trailing messages counted in the
	// "(R recently)" part of a reason. 0 or negative means the whole
	// history, as earlier boards counted it.
	RecentWindow int
}

// DefaultConfig returns position-based recency and a 10-message window.
func DefaultConfig() Config {
	return Config{Recency: RecencyPosition, RecentWindow: DefaultRecentWindow}
}

// Ranker scores and ranks candidate phrases. It holds no history and is safe
// for concurrent use.
type Ranker struct {
	cfg   Config
	match ports.PhraseMatcherFactory
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithMatcher sets how candidate phrases are located in messages. The
// default runs strings.Contains once per phrase and message.
func WithMatcher(f ports.PhraseMatcherFactory) Option {
	return func(r *Ranker) { r.match = f }
}

// New returns a ranker with cfg.
func New(cfg Config, opts ...Option) *Ranker {
	r := &Ranker{cfg: cfg, match: newContainsMatcher}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the ranker's configuration.
func (r *Ranker) Config() Config {
	return r.cfg
}

// Rank returns the top n suggestions for entries (oldest first) as of now.
// Equal scores keep their candidate order, which is the order phrases first
// appear in the history. Returns nil for empty history or n <= 0.
func (r *Ranker) Rank(entries []history.Entry, n int, now time.Time) []Suggestion {
	if n <= 0 {
		return nil
	}
	all := r.Score(entries, now)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// Score computes a suggestion for every candidate phrase, in candidate order
// (unsorted). Returns nil for empty history.
func (r *Ranker) Score(entries []history.Entry, now time.Time) []Suggestion {
	if len(entries) == 0 {
		return nil
	}
	p := newPass(entries, r.match)
	bucket := BucketOf(now.Hour())

	out := make([]Suggestion, 0, len(p.candidates))
	for c, phrase := range p.candidates {
		uses := p.occurrences(c)
		freq := p.frequencyScore(uses)
		rec := r.recencyScore(p, c)
		bonus := p.timeBonus(c, bucket)
		out = append(out, Suggestion{
			Phrase:    phrase,
			Score:     FrequencyWeight*freq + RecencyWeight*rec + bonus,
			Reason:    r.reason(p, c, uses, bonus),
			Frequency: freq,
			Recency:   rec,
			TimeBonus: bonus,
			Uses:      uses,
		})
	}
	return out
}

// recencyScore tiers the position of the newest message containing
// candidate c.
func (r *Ranker) recencyScore(p *pass, c int) float64 {
	last := p.lastIndex(c)
	if last < 0 {
		return 0
	}
	total := float64(len(p.messages))
	var position float64
	switch r.cfg.Recency {
	case RecencyLegacy:
		position = 1 / total
	default:
		position = float64(last+1) / total
	}
	return RecencyTier(position)
}

// RecencyTier maps a position fraction to its recency score.
func RecencyTier(position float64) float64 {
	switch {
	case position >= 0.75:
		return 100
	case position >= 0.50:
		return 70
	default:
		return 30
	}
}

// reason explains a score: "Used N time[s]", then " (R recently)" when the
// phrase repeats and shows up in the recent window, then ", common at this
// time" when the time bonus applied.
func (r *Ranker) reason(p *pass, c, uses int, bonus float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Used %d time", uses)
	if uses != 1 {
		sb.WriteByte('s')
	}
	if recent := p.recentOccurrences(c, r.cfg.RecentWindow); recent > 0 && uses > 1 {
		fmt.Fprintf(&sb, " (%d recently)", recent)
	}
	if bonus > 0 {
		sb.WriteString(", common at this time")
	}
	return sb.String()
}
