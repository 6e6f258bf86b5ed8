package ports

// PhraseMatcher finds which of a fixed set of phrases occur in a text.
// Matching is exact and case-sensitive: a phrase occurs when it is a
// substring of the text.
type PhraseMatcher interface {
	// Contained returns the indexes of the phrases found in text, each at
	// most once, in ascending order.
	Contained(text string) []int
}

// PhraseMatcherFactory compiles a PhraseMatcher for phrases. Index i of a
// Contained result refers to phrases[i].
type PhraseMatcherFactory func(phrases []string) PhraseMatcher
