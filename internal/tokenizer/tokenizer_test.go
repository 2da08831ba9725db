package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Sample", "Hello, my name is Theodore.", []string{"Hello", "my", "name", "is", "Theodore"}},
		{"TwoWords", "big dog", []string{"big", "dog"}},
		{"Empty", "", []string{}},
		{"OnlyDelimiters", " ,. ,\n", []string{}},
		{"LeadingAndTrailing", "  ..hello world,, ", []string{"hello", "world"}},
		{"MultipleSpaces", "a    b", []string{"a", "b"}},
		{"CommaWithoutSpace", "one,two.three", []string{"one", "two", "three"}},
		{"DigitsSplit", "abc123def", []string{"abc", "def"}},
		{"Apostrophe", "don't", []string{"don", "t"}},
		{"NonASCII", "caf\xc3\xa9 ok", []string{"caf", "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewTokenizer([]byte(tt.input)).Tokenize()
			got := list.Strings()

			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTokenizeOnlyDelimitersYieldsSentinel(t *testing.T) {
	for _, input := range []string{"", " ", ",,,", "...", " , . \n", "1234 !?"} {
		list := NewTokenizer([]byte(input)).Tokenize()
		terminated := list.Terminated()

		if len(terminated) != 1 || terminated[0] != "" {
			t.Errorf("input %q: expected only the sentinel, got %q", input, terminated)
		}
	}
}

func TestTokenizeWordsAreAlphabetic(t *testing.T) {
	inputs := []string{
		"Hello, my name is Theodore.",
		"a,b.c d\ne",
		"  mixed,.punctuation  and\tTabs",
		"x1y2z3",
	}

	for _, input := range inputs {
		for _, word := range NewTokenizer([]byte(input)).Tokenize().Strings() {
			if word == "" {
				t.Errorf("input %q: empty word extracted", input)
			}
			if strings.ContainsAny(word, " ,.\n") {
				t.Errorf("input %q: word %q contains a delimiter", input, word)
			}
			for i := 0; i < len(word); i++ {
				if !IsLetter(word[i]) {
					t.Errorf("input %q: word %q is not alphabetic", input, word)
				}
			}
		}
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"Hello, my name is Theodore.",
		"big dog",
		" ,lead.trail, ",
		"a  b   c",
		"no-delims-here",
	}

	for _, input := range inputs {
		var letters strings.Builder
		for i := 0; i < len(input); i++ {
			if IsLetter(input[i]) {
				letters.WriteByte(input[i])
			}
		}

		got := strings.Join(NewTokenizer([]byte(input)).Tokenize().Strings(), "")
		if got != letters.String() {
			t.Errorf("input %q: expected %q, got %q", input, letters.String(), got)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	list := NewTokenizer([]byte(" big, dog")).Tokenize()

	if list.Len() != 2 {
		t.Fatalf("Expected 2 words, got %d", list.Len())
	}
	if list.At(0).Pos != 1 {
		t.Errorf("Expected pos 1, got %d", list.At(0).Pos)
	}
	if list.At(1).Pos != 6 {
		t.Errorf("Expected pos 6, got %d", list.At(1).Pos)
	}
}

func TestTokenizeReleasesInput(t *testing.T) {
	tok := NewTokenizer([]byte("big dog"))
	tok.Tokenize()

	if tok.input != nil {
		t.Errorf("input buffer should be released after Tokenize")
	}
	if tok.starts != nil {
		t.Errorf("word index should be released after Tokenize")
	}
}

func TestTokenizeTwiceAfterRelease(t *testing.T) {
	tok := NewTokenizer([]byte("big dog"))

	first := tok.Tokenize()
	if _, err := first.Release(); err != nil {
		t.Fatalf("unexpected release error: %v", err)
	}

	second := tok.Tokenize()
	if second.Len() != 0 {
		t.Fatalf("expected an empty list on a consumed tokenizer, got %q", second.Strings())
	}
	if first.Released() == second.Released() {
		t.Errorf("second list should be a fresh list")
	}
}

func TestTokenizeNilInput(t *testing.T) {
	if list := NewTokenizer(nil).Tokenize(); list.Len() != 0 {
		t.Fatalf("expected empty list, got %q", list.Strings())
	}
}

func TestTokenizeWordsAreIndependentCopies(t *testing.T) {
	input := []byte("big dog")
	list := NewTokenizer(input).Tokenize()

	input[0] = 'p'
	if list.At(0).Text != "big" {
		t.Errorf("word should not alias the input buffer, got %q", list.At(0).Text)
	}
}

func TestTokenizeStats(t *testing.T) {
	tok := NewTokenizer([]byte("Hi, you."))
	tok.Tokenize()
	stats := tok.Stats()

	if stats.InputSize != 8 {
		t.Errorf("Expected input size 8, got %d", stats.InputSize)
	}
	if stats.TotalWords != 2 {
		t.Errorf("Expected 2 words, got %d", stats.TotalWords)
	}
	if stats.Letters != 5 {
		t.Errorf("Expected 5 letters, got %d", stats.Letters)
	}
	if stats.Delimiters != 3 {
		t.Errorf("Expected 3 delimiters, got %d", stats.Delimiters)
	}
}
