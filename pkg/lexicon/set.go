package lexicon

import (
	"regexp"
	"strings"
)

var spaceSquasher = regexp.MustCompile(`\s+`)

// Set is a case-insensitive word list. Every entry maps to a canonical
// form, so the set doubles as an abbreviation table: "street" and "st" both
// resolve to the canonical "St".
//
// Sets are populated at construction time and read-only afterwards; the
// recognizers that share one never mutate it.
type Set struct {
	entries  map[string]string
	maxWords int
}

func newSet() *Set {
	return &Set{entries: make(map[string]string), maxWords: 1}
}

// normalizeKey lowercases a phrase and squashes runs of whitespace, the
// same folding the tokenizer applies to input words.
func normalizeKey(s string) string {
	return spaceSquasher.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// add registers the canonical form and any aliases under their normalized
// keys.
func (s *Set) add(canonical string, aliases ...string) {
	s.put(canonical, canonical)
	for _, alias := range aliases {
		s.put(canonical, alias)
	}
}

func (s *Set) put(canonical, alias string) {
	key := normalizeKey(alias)
	if key == "" {
		return
	}
	s.entries[key] = canonical
	if words := strings.Count(key, " ") + 1; words > s.maxWords {
		s.maxWords = words
	}
}

// Add registers words as their own canonical forms. It is meant for
// construction-time extension only, before the set is shared.
func (s *Set) Add(words ...string) {
	for _, w := range words {
		s.put(w, w)
	}
}

// Contains reports whether the phrase is in the set.
func (s *Set) Contains(phrase string) bool {
	_, ok := s.entries[normalizeKey(phrase)]
	return ok
}

// Canonical returns the canonical form of the phrase, if present.
func (s *Set) Canonical(phrase string) (string, bool) {
	canonical, ok := s.entries[normalizeKey(phrase)]
	return canonical, ok
}

// Len returns the number of registered keys.
func (s *Set) Len() int {
	return len(s.entries)
}

// MaxWords returns the word count of the longest registered phrase.
func (s *Set) MaxWords() int {
	return s.maxWords
}

func (s *Set) clone() *Set {
	copied := &Set{
		entries:  make(map[string]string, len(s.entries)),
		maxWords: s.maxWords,
	}
	for k, v := range s.entries {
		copied.entries[k] = v
	}
	return copied
}
