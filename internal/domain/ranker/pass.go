package ranker

import (
	"strings"

	"github.com/corey/phraseboard/internal/domain/history"
	"github.com/corey/phraseboard/internal/ports"
)

// pass holds the per-call view of the history shared by all candidates.
// Containment is computed once per ranking call; history may change between
// calls.
type pass struct {
	entries    []history.Entry
	messages   []string
	candidates []string // distinct fragments, first-appearance order
	maxCount   int      // highest exact-fragment count

	// hits[c] lists, ascending, the indexes of the messages containing
	// candidates[c] as a substring.
	hits [][]int
}

func newPass(entries []history.Entry, match ports.PhraseMatcherFactory) *pass {
	p := &pass{
		entries:  entries,
		messages: history.Messages(entries),
	}

	fragmentCount := make(map[string]int)
	for _, msg := range p.messages {
		for _, frag := range Fragments(msg) {
			if _, seen := fragmentCount[frag]; !seen {
				p.candidates = append(p.candidates, frag)
			}
			fragmentCount[frag]++
		}
	}
	for _, c := range fragmentCount {
		if c > p.maxCount {
			p.maxCount = c
		}
	}

	p.hits = make([][]int, len(p.candidates))
	matcher := match(p.candidates)
	for i, msg := range p.messages {
		for _, c := range matcher.Contained(msg) {
			p.hits[c] = append(p.hits[c], i)
		}
	}
	return p
}

// Fragments splits msg on '.' and returns the trimmed, non-empty parts in
// order. Duplicates within msg are kept.
func Fragments(msg string) []string {
	parts := strings.Split(msg, ".")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if frag := strings.TrimSpace(part); frag != "" {
			out = append(out, frag)
		}
	}
	return out
}

// occurrences counts messages containing candidate c.
func (p *pass) occurrences(c int) int {
	return len(p.hits[c])
}

// frequencyScore scales uses against the most repeated fragment. Because
// uses counts containment and maxCount counts exact fragments, a phrase
// nested inside longer messages can score above 100.
func (p *pass) frequencyScore(uses int) float64 {
	if p.maxCount == 0 {
		return 0
	}
	return float64(uses) / float64(p.maxCount) * 100
}

// lastIndex returns the index of the newest message containing candidate c,
// or -1.
func (p *pass) lastIndex(c int) int {
	h := p.hits[c]
	if len(h) == 0 {
		return -1
	}
	return h[len(h)-1]
}

// recentOccurrences counts messages containing candidate c among the last
// window messages. window <= 0 or larger than the history means all of it.
func (p *pass) recentOccurrences(c, window int) int {
	start := 0
	if window > 0 && window < len(p.messages) {
		start = len(p.messages) - window
	}
	n := 0
	for _, i := range p.hits[c] {
		if i >= start {
			n++
		}
	}
	return n
}

// timeBonus returns TimeOfDayBonus when candidate c was used at least
// TimeBonusMinUses times and at least TimeBonusRatio of those uses were
// logged in bucket. Uses without a timestamp count toward the total but
// never match.
func (p *pass) timeBonus(c int, bucket TimeBucket) float64 {
	total, match := len(p.hits[c]), 0
	for _, i := range p.hits[c] {
		if e := p.entries[i]; e.HasTimestamp() && BucketOf(e.Hour()) == bucket {
			match++
		}
	}
	if total >= TimeBonusMinUses && float64(match) >= TimeBonusRatio*float64(total) {
		return TimeOfDayBonus
	}
	return 0
}

// containsMatcher is the default ports.PhraseMatcher: one strings.Contains
// per phrase.
type containsMatcher []string

func newContainsMatcher(phrases []string) ports.PhraseMatcher {
	return containsMatcher(phrases)
}

func (m containsMatcher) Contained(text string) []int {
	var out []int
	for i, phrase := range m {
		if strings.Contains(text, phrase) {
			out = append(out, i)
		}
	}
	return out
}
