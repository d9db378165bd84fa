package analysis

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// Tokens yields the words of text left to right with their positions and
// byte offsets. The sequence can be ranged over any number of times.
func Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		pos := 0
		i := 0

		for i < len(text) {
			// Skip separators.
			r, size := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsLetter(r) {
				i += size
				continue
			}

			start := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !unicode.IsLetter(r) {
					break
				}
				i += size
			}

			tok := Token{
				Term:      text[start:i],
				Position:  pos,
				StartByte: start,
				EndByte:   i,
			}
			if !yield(tok) {
				return
			}
			pos++
		}
	}
}

// SplitWords yields the words of text without normalization.
func SplitWords(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for tok := range Tokens(text) {
			if !yield(tok.Term) {
				return
			}
		}
	}
}

// Segments yields alternating word and separator runs covering all of text.
// Concatenating every segment's Text reproduces text byte for byte.
func Segments(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		i := 0
		for i < len(text) {
			start := i
			r, size := utf8.DecodeRuneInString(text[i:])
			word := unicode.IsLetter(r)
			i += size

			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if unicode.IsLetter(r) != word {
					break
				}
				i += size
			}

			if !yield(Segment{Text: text[start:i], Word: word}) {
				return
			}
		}
	}
}
