package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel marks the logical end of a terminated word list.
const Sentinel = ""

var ErrAlreadyReleased = errors.New("word list already released")

/////////////////////////////////////////////////////////////////////////////
// VERDICT
/////////////////////////////////////////////////////////////////////////////

type Verdict int

const (
	VerdictLegal Verdict = iota
	VerdictIllegal
)

func (v Verdict) String() string {
	switch v {
	case VerdictLegal:
		return "legal"
	case VerdictIllegal:
		return "illegal"
	default:
		return fmt.Sprintf("Verdict(%d)", v)
	}
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Verdict) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "legal":
		*v = VerdictLegal
	case "illegal":
		*v = VerdictIllegal
	default:
		return fmt.Errorf("unknown Verdict: %s", s)
	}

	return nil
}

/////////////////////////////////////////////////////////////////////////////
// WORD
/////////////////////////////////////////////////////////////////////////////

type Word struct {
	Pos  int    `json:"pos"`
	Text string `json:"text"`
}

func (w Word) String() string {
	return w.Text
}

/////////////////////////////////////////////////////////////////////////////
// WORD LIST
/////////////////////////////////////////////////////////////////////////////

// WordList owns the words extracted from one input line. It is read by the
// scanner and released exactly once at teardown.
type WordList struct {
	words    []Word
	released bool
}

func NewWordList(words []Word) *WordList {
	if words == nil {
		words = make([]Word, 0)
	}
	return &WordList{words: words}
}

func (l *WordList) Len() int {
	return len(l.words)
}

func (l *WordList) At(i int) Word {
	return l.words[i]
}

// Words returns a copy so callers cannot reorder the list.
func (l *WordList) Words() []Word {
	out := make([]Word, len(l.words))
	copy(out, l.words)
	return out
}

// Strings returns the word texts in input order.
func (l *WordList) Strings() []string {
	out := make([]string, 0, len(l.words))
	for _, w := range l.words {
		out = append(out, w.Text)
	}
	return out
}

// Terminated returns the word texts followed by the Sentinel.
func (l *WordList) Terminated() []string {
	return append(l.Strings(), Sentinel)
}

// Allocations counts the owned storage: one per word plus the list itself.
func (l *WordList) Allocations() int {
	if l.released {
		return 0
	}
	return len(l.words) + 1
}

func (l *WordList) Released() bool {
	return l.released
}

// Release drops every word in order, then the list, and returns the number
// of released allocations.
func (l *WordList) Release() (int, error) {
	if l.released {
		return 0, ErrAlreadyReleased
	}

	n := 0
	for i := range l.words {
		l.words[i] = Word{}
		n++
	}
	l.words = nil
	n++

	l.released = true
	return n, nil
}

/////////////////////////////////////////////////////////////////////////////
// MATCH
/////////////////////////////////////////////////////////////////////////////

// Match is a word holding at least one illegal character. Index and Char
// give the first offending character.
type Match struct {
	Word  Word `json:"word"`
	Index int  `json:"index"`
	Char  byte `json:"-"`
}

func (m Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Word  Word   `json:"word"`
		Index int    `json:"index"`
		Char  string `json:"char"`
	}{m.Word, m.Index, string(m.Char)})
}

func (m Match) String() string {
	return fmt.Sprintf("%s (%q at %d)", m.Word.Text, m.Char, m.Index)
}
