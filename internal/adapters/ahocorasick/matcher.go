// Package ahocorasick implements ports.PhraseMatcher with an Aho-Corasick
// automaton. It wraps the petar-dambovaliev/aho-corasick library, so every
// candidate phrase is located in a message in one pass over the message
// instead of one substring search per phrase.
package ahocorasick

import (
	"github.com/corey/phraseboard/internal/ports"
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Matcher reports which phrases a text contains.
// Immutable after construction; safe for concurrent use.
type Matcher struct {
	automaton aho.AhoCorasick
	phrases   []string
}

var _ ports.PhraseMatcher = (*Matcher)(nil)

// NewMatcher compiles the automaton for phrases.
func NewMatcher(phrases []string) *Matcher {
	p := make([]string, len(phrases))
	copy(p, phrases)
	m := &Matcher{phrases: p}
	if len(p) > 0 {
		builder := aho.NewAhoCorasickBuilder(aho.Opts{
			DFA: true,
		})
		m.automaton = builder.Build(p)
	}
	return m
}

// Factory is a ports.PhraseMatcherFactory building Aho-Corasick matchers.
func Factory(phrases []string) ports.PhraseMatcher {
	return NewMatcher(phrases)
}

// Contained returns the indexes of the phrases found in text, ascending.
// Overlapping matches are reported, so both "yes" and "yes please" are
// found in "yes please".
func (m *Matcher) Contained(text string) []int {
	if len(m.phrases) == 0 || text == "" {
		return nil
	}

	found := make([]bool, len(m.phrases))
	n := 0
	iter := m.automaton.IterOverlappingByte([]byte(text))
	for next := iter.Next(); next != nil; next = iter.Next() {
		if idx := next.Pattern(); !found[idx] {
			found[idx] = true
			n++
		}
	}
	if n == 0 {
		return nil
	}

	out := make([]int, 0, n)
	for i, ok := range found {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// PatternCount returns the number of phrases in the automaton.
func (m *Matcher) PatternCount() int {
	return len(m.phrases)
}

// Pattern returns the phrase at idx, or "" when out of range.
func (m *Matcher) Pattern(idx int) string {
	if idx < 0 || idx >= len(m.phrases) {
		return ""
	}
	return m.phrases[idx]
}
