// Package brokenkeys provides a public API for finding the words of a line
// that cannot be typed on a broken keyboard.
//
// This package provides functions to:
//   - Read one line of input as UTF-8, CP437, CP850 or ISO-8859-1
//   - Split the line into words
//   - Report the words holding an illegal character
//   - Render the line with illegal characters highlighted
//
// Example usage:
//
//	import "github.com/badele/brokenkeys/pkg/brokenkeys"
//
//	line, _ := brokenkeys.ReadLine(os.Stdin)
//	list := brokenkeys.NewTokenizer(line).Tokenize()
//	matches := brokenkeys.NewScanner(brokenkeys.NewExclusionSet("ghijk")).Check(list)
//	list.Release()
package brokenkeys

import (
	"io"

	"github.com/badele/brokenkeys/internal/exporter"
	"github.com/badele/brokenkeys/internal/reader"
	"github.com/badele/brokenkeys/internal/scanner"
	"github.com/badele/brokenkeys/internal/tokenizer"
	"github.com/badele/brokenkeys/internal/types"
)

// Type aliases for public API
type (
	// Word is a maximal run of ASCII letters and its offset in the line
	Word = types.Word

	// WordList owns the words of one line
	WordList = types.WordList

	// Match is a word holding an illegal character
	Match = types.Match

	// Report gathers the words, matches and statistics of a run
	Report = types.Report

	// ExclusionSet is the case-sensitive set of illegal characters
	ExclusionSet = scanner.ExclusionSet

	Tokenizer = tokenizer.Tokenizer

	Scanner = scanner.Scanner
)

const (
	DefaultIllegal = scanner.DefaultIllegal
	SampleInput    = exporter.SampleInput
)

var (
	ErrBufferLimit     = reader.ErrBufferLimit
	ErrAlreadyReleased = types.ErrAlreadyReleased
)

// ReadLine reads one line, without its newline, from r.
func ReadLine(r io.Reader) ([]byte, error) {
	return reader.ReadLine(r)
}

// ReadLineEncoded reads one line of r as sourceEncoding and returns it as
// UTF-8. Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
func ReadLineEncoded(r io.Reader, sourceEncoding string) ([]byte, error) {
	rd, err := reader.NewDecodingReader(r, sourceEncoding)
	if err != nil {
		return nil, err
	}
	return rd.ReadLine()
}

// NewTokenizer creates a tokenizer owning input.
func NewTokenizer(input []byte) *Tokenizer {
	return tokenizer.NewTokenizer(input)
}

func NewExclusionSet(chars string) ExclusionSet {
	return scanner.NewExclusionSet(chars)
}

func NewScanner(set ExclusionSet) *Scanner {
	return scanner.NewScanner(set)
}

// IllegalWords returns, in order, the words of line holding at least one
// character of illegal.
func IllegalWords(line, illegal string) []string {
	list := tokenizer.NewTokenizer([]byte(line)).Tokenize()
	defer list.Release()

	matches := scanner.NewScanner(scanner.NewExclusionSet(illegal)).Check(list)
	words := make([]string, 0, len(matches))
	for _, m := range matches {
		words = append(words, m.Word.Text)
	}
	return words
}

// Highlight renders line with its illegal characters in bold red, wrapped
// at width columns.
func Highlight(line, illegal string, width int) (string, error) {
	return exporter.ExportHighlight(line, scanner.NewExclusionSet(illegal), width)
}
