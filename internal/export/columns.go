package export

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"wordfreq/internal/frequency"
)

// Column is one exported field of a WordCount.
type Column struct {
	Name  string
	Value func(frequency.WordCount) string
}

// WordCountColumns is the declared field list of an exported WordCount.
var WordCountColumns = []Column{
	{Name: "Word", Value: func(wc frequency.WordCount) string { return wc.Word }},
	{Name: "Count", Value: func(wc frequency.WordCount) string { return strconv.Itoa(wc.Count) }},
}

// ColumnOrder selects how columns are laid out in the file.
type ColumnOrder int

const (
	// Alphabetical sorts columns by name, giving "Count, Word".
	Alphabetical ColumnOrder = iota
	// Declared keeps the order of the column list.
	Declared
)

func (o ColumnOrder) String() string {
	switch o {
	case Alphabetical:
		return "alphabetical"
	case Declared:
		return "declared"
	default:
		return fmt.Sprintf("ColumnOrder(%d)", int(o))
	}
}

// ParseColumnOrder parses "alphabetical" or "declared".
func ParseColumnOrder(s string) (ColumnOrder, error) {
	switch strings.ToLower(s) {
	case "", "alphabetical":
		return Alphabetical, nil
	case "declared":
		return Declared, nil
	default:
		return 0, fmt.Errorf("unknown column order: %q", s)
	}
}

func orderColumns(cols []Column, order ColumnOrder) []Column {
	out := slices.Clone(cols)
	if order == Alphabetical {
		slices.SortStableFunc(out, func(a, b Column) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	return out
}
