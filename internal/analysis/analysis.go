// Package analysis turns raw text into lowercased words.
//
// A word is a maximal run of Unicode letters. Digits, punctuation, whitespace
// and invalid UTF-8 bytes all act as separators.
package analysis

import "iter"

// Token represents a single word found in source text.
type Token struct {
	Term      string
	Position  int
	StartByte int
	EndByte   int
}

// Analyzer processes text into a list of tokens.
type Analyzer interface {
	// Analyze tokenizes the input text and returns tokens with positions.
	Analyze(text string) []Token
}

// LetterAnalyzer splits text into maximal letter runs and normalizes each
// term. Offsets still refer to the original, unnormalized text.
type LetterAnalyzer struct {
	norm Normalizer
}

// NewLetterAnalyzer creates a LetterAnalyzer. A nil n means InvariantLower.
func NewLetterAnalyzer(n Normalizer) *LetterAnalyzer {
	if n == nil {
		n = InvariantLower
	}
	return &LetterAnalyzer{norm: n}
}

// Analyze returns every word of text in order of appearance.
func (a *LetterAnalyzer) Analyze(text string) []Token {
	var tokens []Token
	for tok := range Tokens(text) {
		tok.Term = a.norm.Normalize(tok.Term)
		tokens = append(tokens, tok)
	}
	return tokens
}

// Terms yields the Term of each token.
func Terms(tokens []Token) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, tok := range tokens {
			if !yield(tok.Term) {
				return
			}
		}
	}
}

// Segment is a contiguous piece of source text: either a word or the run of
// separator characters between two words.
type Segment struct {
	Text string
	Word bool
}

// Words yields every word of text after passing it through n.
func Words(text string, n Normalizer) iter.Seq[string] {
	if n == nil {
		n = InvariantLower
	}
	return func(yield func(string) bool) {
		for w := range SplitWords(text) {
			if !yield(n.Normalize(w)) {
				return
			}
		}
	}
}
