package tokenizer

import (
	"github.com/badele/brokenkeys/internal/types"
)

var _ types.TokenizerWithStats = (*Tokenizer)(nil)

type Tokenizer struct {
	input  []byte
	pos    int
	starts []int
	words  []types.Word
	stats  types.TokenStats
}

// NewTokenizer takes ownership of input. The buffer is dropped by Tokenize.
func NewTokenizer(input []byte) *Tokenizer {
	return &Tokenizer{
		input:  input,
		pos:    0,
		starts: make([]int, 0, 8),
		words:  make([]types.Word, 0),
		stats:  types.TokenStats{InputSize: len(input)},
	}
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// IsDelimiter reports whether c ends a word.
func IsDelimiter(c byte) bool {
	return !IsLetter(c)
}

// Tokenize indexes every word start, then copies each word out of the
// buffer. The input buffer and the index are released before returning.
func (t *Tokenizer) Tokenize() *types.WordList {
	// The buffer is gone after the first call, and so is the previous list.
	if t.input == nil {
		return types.NewWordList(nil)
	}

	t.indexWordStarts()

	for _, start := range t.starts {
		t.pos = start
		if word, ok := t.nextWord(); ok {
			t.words = append(t.words, word)
		}
	}

	t.stats.TotalWords = len(t.words)
	t.input = nil
	t.starts = nil

	return types.NewWordList(t.words)
}

func (t *Tokenizer) Stats() types.TokenStats {
	return t.stats
}

// indexWordStarts records the offset of every letter that follows a
// delimiter or opens the buffer.
func (t *Tokenizer) indexWordStarts() {
	prevLetter := false
	for i, c := range t.input {
		letter := IsLetter(c)
		if letter {
			t.stats.Letters++
			if !prevLetter {
				t.starts = append(t.starts, i)
			}
		} else {
			t.stats.Delimiters++
		}
		prevLetter = letter
	}
}

// nextWord skips forward to the first letter at or after pos and extracts
// the run of letters from there. The skip stops at the end of the buffer,
// in which case no word is found.
func (t *Tokenizer) nextWord() (types.Word, bool) {
	for t.pos < len(t.input) && !IsLetter(t.input[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.input) {
		return types.Word{}, false
	}

	start := t.pos
	for t.pos < len(t.input) && !IsDelimiter(t.input[t.pos]) {
		t.pos++
	}

	return types.Word{
		Pos:  start,
		Text: string(t.input[start:t.pos]),
	}, true
}
