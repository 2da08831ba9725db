// Package scanner flags words that cannot be typed on a broken keyboard.
package scanner

import (
	"github.com/badele/brokenkeys/internal/types"
)

// DefaultIllegal is the exclusion set used when none is configured.
const DefaultIllegal = "ghijk"

// ExclusionSet holds the characters treated as illegal. Matching is
// case-sensitive and by simple membership.
type ExclusionSet struct {
	chars string
	index [256]bool
}

func NewExclusionSet(chars string) ExclusionSet {
	set := ExclusionSet{chars: chars}
	for i := 0; i < len(chars); i++ {
		set.index[chars[i]] = true
	}
	return set
}

func (s ExclusionSet) String() string {
	return s.chars
}

func (s ExclusionSet) Contains(c byte) bool {
	return s.index[c]
}

func (s ExclusionSet) Empty() bool {
	return len(s.chars) == 0
}

// CharMatch returns the first index in word holding a character of chars,
// or -1. Word characters are tried in order, each against every excluded
// character.
func CharMatch(word, chars string) int {
	for i := 0; i < len(word); i++ {
		for j := 0; j < len(chars); j++ {
			if word[i] == chars[j] {
				return i
			}
		}
	}
	return -1
}

type Scanner struct {
	set ExclusionSet
}

func NewScanner(set ExclusionSet) *Scanner {
	return &Scanner{set: set}
}

func (s *Scanner) Set() ExclusionSet {
	return s.set
}

// Match tests a single word.
func (s *Scanner) Match(word types.Word) (types.Match, bool) {
	i := CharMatch(word.Text, s.set.chars)
	if i < 0 {
		return types.Match{}, false
	}
	return types.Match{Word: word, Index: i, Char: word.Text[i]}, true
}

// Check returns the offending words of list in input order.
func (s *Scanner) Check(list *types.WordList) []types.Match {
	matches := make([]types.Match, 0)
	for i := 0; i < list.Len(); i++ {
		if m, ok := s.Match(list.At(i)); ok {
			matches = append(matches, m)
		}
	}
	return matches
}

// Stats counts every illegal character occurrence, not only the first one
// per word.
func (s *Scanner) Stats(list *types.WordList, matches []types.Match) types.ScanStats {
	stats := types.ScanStats{
		TotalWords:   list.Len(),
		IllegalWords: len(matches),
		CharHits:     make(map[string]int),
	}

	for _, m := range matches {
		text := m.Word.Text
		for i := 0; i < len(text); i++ {
			if s.set.Contains(text[i]) {
				stats.CharHits[string(text[i])]++
			}
		}
	}

	return stats
}
