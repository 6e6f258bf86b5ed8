package ranker

import (
	"fmt"
	"testing"
	"time"

	"github.com/corey/phraseboard/internal/adapters/ahocorasick"
	"github.com/corey/phraseboard/internal/domain/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Suggestion ranking
// Expectation: score = 0.6*frequency + 0.4*recency + timeBonus, ranked
// descending, ties in first-appearance order.
// =============================================================================

const delta = 1e-9

// at returns 2024-03-05 at hour:min UTC.
func at(hour, min int) time.Time {
	return time.Date(2024, 3, 5, hour, min, 0, 0, time.UTC)
}

// entriesAt stamps every message with ts.
func entriesAt(ts time.Time, msgs ...string) []history.Entry {
	out := make([]history.Entry, len(msgs))
	for i, m := range msgs {
		out[i] = history.Entry{Timestamp: ts, Message: m}
	}
	return out
}

// byPhrase indexes suggestions for lookup.
func byPhrase(ss []Suggestion) map[string]Suggestion {
	m := make(map[string]Suggestion, len(ss))
	for _, s := range ss {
		m[s.Phrase] = s
	}
	return m
}

// drinks is logged in the morning and ranked in the evening, so no time
// bonus applies.
var drinks = entriesAt(at(8, 0), "I want water.", "I want water.", "I want juice.")

func TestRank_Frequency(t *testing.T) {
	got := byPhrase(New(DefaultConfig()).Score(drinks, at(19, 0)))
	require.Len(t, got, 2)

	assert.Equal(t, 2, got["I want water"].Uses)
	assert.Equal(t, 1, got["I want juice"].Uses)
	assert.InDelta(t, 100, got["I want water"].Frequency, delta)
	assert.InDelta(t, 50, got["I want juice"].Frequency, delta)
}

func TestRank_PositionRecency(t *testing.T) {
	got := New(DefaultConfig()).Rank(drinks, 5, at(19, 0))
	require.Len(t, got, 2)

	assert.Equal(t, "I want water", got[0].Phrase)
	assert.InDelta(t, 70, got[0].Recency, delta) // last at index 1 of 3
	assert.InDelta(t, 88, got[0].Score, delta)
	assert.Equal(t, "Used 2 times (2 recently)", got[0].Reason)

	assert.Equal(t, "I want juice", got[1].Phrase)
	assert.InDelta(t, 100, got[1].Recency, delta) // newest message
	assert.InDelta(t, 70, got[1].Score, delta)
	assert.Equal(t, "Used 1 time", got[1].Reason)
}

func TestRank_LegacyRecency(t *testing.T) {
	r := New(Config{Recency: RecencyLegacy, RecentWindow: DefaultRecentWindow})
	got := r.Rank(drinks, 5, at(19, 0))
	require.Len(t, got, 2)

	// 1/3 for every phrase that occurs: always the lowest tier.
	assert.InDelta(t, 30, got[0].Recency, delta)
	assert.InDelta(t, 30, got[1].Recency, delta)
	assert.InDelta(t, 72, got[0].Score, delta)
	assert.InDelta(t, 42, got[1].Score, delta)
}

func TestRank_LegacyRecencyShortHistory(t *testing.T) {
	r := New(Config{Recency: RecencyLegacy})

	one := r.Score(entriesAt(at(8, 0), "hi"), at(19, 0))
	assert.InDelta(t, 100, one[0].Recency, delta)

	two := r.Score(entriesAt(at(8, 0), "hi", "bye"), at(19, 0))
	assert.InDelta(t, 70, two[0].Recency, delta)
	assert.InDelta(t, 70, two[1].Recency, delta)
}

func TestRank_TimeOfDayBonus(t *testing.T) {
	r := New(DefaultConfig())
	entries := []history.Entry{
		{Timestamp: at(8, 0), Message: "Good morning"},
		{Timestamp: at(9, 0), Message: "I want water"},
		{Timestamp: at(8, 30), Message: "Good morning"},
	}

	got := byPhrase(r.Score(entries, at(10, 0)))
	gm := got["Good morning"]
	assert.InDelta(t, TimeOfDayBonus, gm.TimeBonus, delta)
	assert.InDelta(t, 0.6*100+0.4*100+10, gm.Score, delta)
	assert.Equal(t, "Used 2 times (2 recently), common at this time", gm.Reason)

	// A single use never earns the bonus.
	assert.Zero(t, got["I want water"].TimeBonus)

	// Same history ranked in the afternoon: no bonus.
	got = byPhrase(r.Score(entries, at(14, 0)))
	assert.Zero(t, got["Good morning"].TimeBonus)
	assert.Equal(t, "Used 2 times (2 recently)", got["Good morning"].Reason)
}

func TestRank_TimeBonusRatio(t *testing.T) {
	r := New(DefaultConfig())
	now := at(9, 0)

	// 3 of 5 uses in the morning: exactly 60%, bonus applies.
	entries := []history.Entry{
		{Timestamp: at(7, 0), Message: "hello"},
		{Timestamp: at(8, 0), Message: "hello"},
		{Timestamp: at(10, 0), Message: "hello"},
		{Timestamp: at(14, 0), Message: "hello"},
		{Timestamp: at(22, 0), Message: "hello"},
	}
	assert.InDelta(t, TimeOfDayBonus, r.Score(entries, now)[0].TimeBonus, delta)

	// 2 of 4 uses: 50%, no bonus.
	assert.Zero(t, r.Score(entries[1:], now)[0].TimeBonus)
}

func TestRank_TimeBonusIgnoresUntimedEntries(t *testing.T) {
	r := New(DefaultConfig())
	entries := []history.Entry{
		{Message: "hello"},
		{Message: "hello"},
		{Timestamp: at(8, 0), Message: "hello"},
	}
	// Untimed uses count toward the total but never match: 1 of 3.
	assert.Zero(t, r.Score(entries, at(9, 0))[0].TimeBonus)
}

func TestRank_RecentWindow(t *testing.T) {
	msgs := []string{"hello", "hello"}
	for i := 0; i < 10; i++ {
		msgs = append(msgs, fmt.Sprintf("filler %d", i))
	}
	entries := entriesAt(at(8, 0), msgs...)

	windowed := byPhrase(New(DefaultConfig()).Score(entries, at(19, 0)))
	assert.Equal(t, "Used 2 times", windowed["hello"].Reason, "both uses are older than the last 10 messages")

	whole := byPhrase(New(Config{RecentWindow: 0}).Score(entries, at(19, 0)))
	assert.Equal(t, "Used 2 times (2 recently)", whole["hello"].Reason)
}

func TestRank_ContainmentCanExceedHundred(t *testing.T) {
	// "yes" is an exact fragment once but contained in both messages.
	got := byPhrase(New(DefaultConfig()).Score(entriesAt(at(8, 0), "yes", "yes please"), at(19, 0)))
	assert.Equal(t, 2, got["yes"].Uses)
	assert.InDelta(t, 200, got["yes"].Frequency, delta)
}

func TestRank_StableTies(t *testing.T) {
	entries := entriesAt(at(8, 0), "Good morning. Thank you")
	got := New(DefaultConfig()).Rank(entries, 5, at(19, 0))
	require.Len(t, got, 2)
	assert.InDelta(t, got[0].Score, got[1].Score, delta)
	assert.Equal(t, "Good morning", got[0].Phrase)
	assert.Equal(t, "Thank you", got[1].Phrase)
}

func TestRank_Limits(t *testing.T) {
	r := New(DefaultConfig())
	entries := entriesAt(at(8, 0), "a. b. c. d")

	assert.Len(t, r.Rank(entries, 2, at(19, 0)), 2)
	assert.Len(t, r.Rank(entries, 10, at(19, 0)), 4)
	assert.Nil(t, r.Rank(entries, 0, at(19, 0)))
	assert.Nil(t, r.Rank(entries, -1, at(19, 0)))
}

func TestRank_EmptyHistory(t *testing.T) {
	r := New(DefaultConfig())
	assert.Nil(t, r.Rank(nil, 5, at(19, 0)))
	assert.Nil(t, r.Rank([]history.Entry{}, 5, at(19, 0)))
}

func TestRank_DuplicateFragmentsInOneMessage(t *testing.T) {
	got := byPhrase(New(DefaultConfig()).Score(entriesAt(at(8, 0), "yes. yes. no"), at(19, 0)))
	require.Len(t, got, 2)
	// Uses counts messages, not fragments.
	assert.Equal(t, 1, got["yes"].Uses)
	// maxCount counts fragments: "yes" appears twice.
	assert.InDelta(t, 50, got["yes"].Frequency, delta)
	assert.InDelta(t, 50, got["no"].Frequency, delta)
}

func TestFragments(t *testing.T) {
	assert.Equal(t, []string{"Hi", "there"}, Fragments("Hi. . there..  "))
	assert.Equal(t, []string{"no period"}, Fragments("  no period "))
	assert.Empty(t, Fragments("..."))
	assert.Equal(t, []string{"a", "a"}, Fragments("a.a"))
}

func TestRecencyTier(t *testing.T) {
	assert.Equal(t, 100.0, RecencyTier(1))
	assert.Equal(t, 100.0, RecencyTier(0.75))
	assert.Equal(t, 70.0, RecencyTier(0.74))
	assert.Equal(t, 70.0, RecencyTier(0.5))
	assert.Equal(t, 30.0, RecencyTier(0.49))
	assert.Equal(t, 30.0, RecencyTier(0))
}

func TestParseRecencyMode(t *testing.T) {
	for in, want := range map[string]RecencyMode{
		"":         RecencyPosition,
		"position": RecencyPosition,
		" Legacy ": RecencyLegacy,
		"LEGACY":   RecencyLegacy,
	} {
		got, err := ParseRecencyMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseRecencyMode("newest")
	assert.Error(t, err)

	assert.Equal(t, "position", RecencyPosition.String())
	assert.Equal(t, "legacy", RecencyLegacy.String())
}

func TestBucketOf(t *testing.T) {
	cases := map[int]TimeBucket{
		0: Night, 4: Night, 5: Morning, 11: Morning, 12: Afternoon,
		16: Afternoon, 17: Evening, 20: Evening, 21: Night, 23: Night, -1: Night,
	}
	for hour, want := range cases {
		assert.Equal(t, want, BucketOf(hour), "hour %d", hour)
	}
}

func TestSuggestion_String(t *testing.T) {
	s := Suggestion{Phrase: "I want water", Score: 88, Reason: "Used 2 times (2 recently)"}
	assert.Equal(t, "I want water (Score: 88.0, Reason: Used 2 times (2 recently))", s.String())
}

func TestScore_MatchersAgree(t *testing.T) {
	entries := []history.Entry{
		{Timestamp: at(8, 0), Message: "Good morning. I want water"},
		{Timestamp: at(8, 30), Message: "I want water please"},
		{Message: "yes"},
		{Timestamp: at(12, 0), Message: "yes please. Thank you"},
		{Timestamp: at(8, 45), Message: "Good morning"},
	}
	now := at(9, 0)

	for _, cfg := range []Config{DefaultConfig(), {Recency: RecencyLegacy}, {RecentWindow: 2}} {
		want := New(cfg).Score(entries, now)
		got := New(cfg, WithMatcher(ahocorasick.Factory)).Score(entries, now)
		assert.Equal(t, want, got)
	}
}
