package types

type Tokenizer interface {
	Tokenize() *WordList
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	Stats() TokenStats
}
