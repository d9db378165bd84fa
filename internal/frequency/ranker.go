package frequency

import (
	"cmp"
	"slices"
	"strings"
)

type rankConfig struct {
	comparer Comparer
	limit    int
}

// RankOption configures Rank.
type RankOption func(*rankConfig)

// WithTieBreak orders words with equal counts by c instead of byte order.
// Words c considers equal fall back to byte order so the result stays
// deterministic.
func WithTieBreak(c Comparer) RankOption {
	return func(cfg *rankConfig) {
		if c != nil {
			cfg.comparer = c
		}
	}
}

// Top keeps only the first n entries after ranking. n <= 0 keeps all.
func Top(n int) RankOption {
	return func(cfg *rankConfig) {
		cfg.limit = n
	}
}

// Rank orders the entries of table by descending count. Equal counts are
// ordered by ascending word.
func Rank(table Table, opts ...RankOption) RankedList {
	cfg := rankConfig{comparer: ExactComparer{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	list := make(RankedList, 0, len(table))
	for w, c := range table {
		list = append(list, WordCount{Word: w, Count: c})
	}

	slices.SortFunc(list, func(a, b WordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		if c := cfg.comparer.Compare(a.Word, b.Word); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})

	if cfg.limit > 0 && len(list) > cfg.limit {
		list = list[:cfg.limit]
	}
	return list
}
