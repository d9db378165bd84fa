package analysis

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer maps a word to its canonical counting form.
type Normalizer interface {
	Normalize(word string) string
}

// NormalizerFunc adapts a plain function to the Normalizer interface.
type NormalizerFunc func(word string) string

// Normalize calls f(word).
func (f NormalizerFunc) Normalize(word string) string {
	return f(word)
}

// InvariantLower lowercases with the locale independent Unicode mapping.
var InvariantLower Normalizer = NormalizerFunc(strings.ToLower)

// LocaleLower lowercases using the rules of a single language, e.g. Turkish
// maps "I" to dotless "ı". Not safe for concurrent use.
type LocaleLower struct {
	tag   language.Tag
	caser cases.Caser
}

// NewLocaleLower creates a LocaleLower for tag.
func NewLocaleLower(tag language.Tag) *LocaleLower {
	return &LocaleLower{tag: tag, caser: cases.Lower(tag)}
}

// Normalize lowercases word.
func (l *LocaleLower) Normalize(word string) string {
	return l.caser.String(word)
}

// Tag returns the language the normalizer was built for.
func (l *LocaleLower) Tag() language.Tag {
	return l.tag
}
