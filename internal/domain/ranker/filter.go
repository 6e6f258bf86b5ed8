package ranker

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// phraseSource implements fuzzy.Source over suggestion phrases.
type phraseSource []Suggestion

func (s phraseSource) String(i int) string { return s[i].Phrase }
func (s phraseSource) Len() int            { return len(s) }

// Filter keeps the suggestions whose phrase fuzzy-matches typed: the
// characters of typed appear in the phrase in order, ignoring case, so a
// partly typed or abbreviated phrase still finds it. Ranked order is kept;
// the fuzzy score only decides membership. Blank typed returns suggestions
// unchanged.
func Filter(suggestions []Suggestion, typed string) []Suggestion {
	typed = strings.TrimSpace(typed)
	if typed == "" || len(suggestions) == 0 {
		return suggestions
	}

	matches := fuzzy.FindFrom(typed, phraseSource(suggestions))
	if len(matches) == 0 {
		return nil
	}
	keep := make([]bool, len(suggestions))
	for _, m := range matches {
		keep[m.Index] = true
	}

	out := make([]Suggestion, 0, len(matches))
	for i, s := range suggestions {
		if keep[i] {
			out = append(out, s)
		}
	}
	return out
}
