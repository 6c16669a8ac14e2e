package selection

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher decides whether an item name is visible under a filter string.
// An empty filter must match every name.
type Matcher interface {
	Match(name, filter string) bool
}

// SubstringMatcher is the default visibility predicate: case-insensitive
// substring containment, matching the literal behavior of a live filter
// box (no tokenizing, no ranking).
type SubstringMatcher struct{}

func (SubstringMatcher) Match(name, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

// FuzzyMatcher is an opt-in alternative predicate using fuzzy matching.
// It is never the default; the dialog contract is substring containment.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(name, filter string) bool {
	if filter == "" {
		return true
	}
	return len(fuzzy.Find(filter, []string{name})) > 0
}
