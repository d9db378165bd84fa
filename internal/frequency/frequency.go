// Package frequency counts words and ranks them by how often they occur.
package frequency

// Table maps each distinct word to its number of occurrences. Keys are
// unique; iteration order carries no meaning.
type Table map[string]int

// Total returns the sum of all counts in t.
func (t Table) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// WordCount is one ranked entry.
type WordCount struct {
	Word  string
	Count int
}

// RankedList is a sequence of WordCount ordered by descending Count.
type RankedList []WordCount

// Total returns the sum of all counts in l.
func (l RankedList) Total() int {
	total := 0
	for _, wc := range l {
		total += wc.Count
	}
	return total
}
