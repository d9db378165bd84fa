package frequency

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer decides which words count as the same word and how words are
// ordered when their counts tie.
type Comparer interface {
	// Key returns the equality key of word. Two words are the same word
	// exactly when their keys are equal.
	Key(word string) string
	// Compare orders two words, returning <0, 0 or >0.
	Compare(a, b string) int
}

// ExactComparer treats words as equal only when they are byte-identical and
// orders them byte-wise. It is deterministic and locale independent.
type ExactComparer struct{}

// Key returns word unchanged.
func (ExactComparer) Key(word string) string { return word }

// Compare orders a and b byte-wise.
func (ExactComparer) Compare(a, b string) int { return strings.Compare(a, b) }

// CollatorComparer compares words with the collation rules of a language.
// Not safe for concurrent use.
type CollatorComparer struct {
	c   *collate.Collator
	buf collate.Buffer
}

// NewCollatorComparer creates a CollatorComparer for tag. Options such as
// collate.IgnoreDiacritics widen what counts as the same word.
func NewCollatorComparer(tag language.Tag, opts ...collate.Option) *CollatorComparer {
	return &CollatorComparer{c: collate.New(tag, opts...)}
}

// Key returns the collation sort key of word.
func (cc *CollatorComparer) Key(word string) string {
	key := string(cc.c.KeyFromString(&cc.buf, word))
	cc.buf.Reset()
	return key
}

// Compare orders a and b by the collation rules.
func (cc *CollatorComparer) Compare(a, b string) int {
	return cc.c.CompareString(a, b)
}
