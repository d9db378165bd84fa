package frequency

import "iter"

type countConfig struct {
	comparer Comparer
}

// CountOption configures Count.
type CountOption func(*countConfig)

// WithComparer sets the equality used to merge words. The first spelling
// seen for a group of equal words becomes its table key.
func WithComparer(c Comparer) CountOption {
	return func(cfg *countConfig) {
		if c != nil {
			cfg.comparer = c
		}
	}
}

// Count consumes words and returns how many times each distinct word
// occurred.
func Count(words iter.Seq[string], opts ...CountOption) Table {
	cfg := countConfig{comparer: ExactComparer{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	counts := make(Table)
	if _, exact := cfg.comparer.(ExactComparer); exact {
		for w := range words {
			counts[w]++
		}
		return counts
	}

	// key -> first spelling seen
	spelling := make(map[string]string)
	for w := range words {
		k := cfg.comparer.Key(w)
		s, ok := spelling[k]
		if !ok {
			s = w
			spelling[k] = w
		}
		counts[s]++
	}
	return counts
}
