// Package pipeline sequences load, analyze and export over the stateless
// stages in analysis, frequency and export.
package pipeline

import (
	"wordfreq/internal/analysis"
	"wordfreq/internal/export"
	"wordfreq/internal/frequency"
)

// Options configures a Session. The zero value uses UTF-8 input, invariant
// lowercasing, exact word equality and the default CSV layout.
type Options struct {
	Encoding   string
	Normalizer analysis.Normalizer
	Comparer   frequency.Comparer
	// Top keeps only the n most frequent words; 0 keeps all.
	Top    int
	Export export.Options
}

// Analyze runs text through tokenize, normalize, count and rank.
func Analyze(text string, opts Options) frequency.RankedList {
	ranked, _ := analyze(text, opts)
	return ranked
}

// analyze also returns the number of words found, before any Top cut.
func analyze(text string, opts Options) (frequency.RankedList, int) {
	tokens := analysis.NewLetterAnalyzer(opts.Normalizer).Analyze(text)
	table := frequency.Count(
		analysis.Terms(tokens),
		frequency.WithComparer(opts.Comparer),
	)
	ranked := frequency.Rank(table,
		frequency.WithTieBreak(opts.Comparer),
		frequency.Top(opts.Top),
	)
	return ranked, len(tokens)
}
