package pipeline

import (
	"log/slog"
	"path/filepath"

	"wordfreq/internal/export"
	"wordfreq/internal/frequency"
	"wordfreq/internal/loader"
	"wordfreq/internal/storage"
)

// State is the position of a Session in the load → analyze → export flow.
type State string

const (
	StateIdle     State = "idle"
	StateLoaded   State = "loaded"
	StateAnalyzed State = "analyzed"
	StateExported State = "exported"
)

// Session holds the text and ranked list between steps. A failed step
// leaves the previous state untouched.
type Session struct {
	opts   Options
	logger *slog.Logger

	state  State
	source string
	text   string
	ranked frequency.RankedList
}

// NewSession creates an idle Session.
func NewSession(opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{opts: opts, logger: logger, state: StateIdle}
}

// State returns the current step.
func (s *Session) State() State {
	return s.state
}

// Source returns the path of the loaded file.
func (s *Session) Source() string {
	return s.source
}

// Ranked returns the result of the last successful Analyze.
func (s *Session) Ranked() frequency.RankedList {
	return s.ranked
}

// Load reads path and replaces any previously loaded text. The previous
// analysis is discarded.
func (s *Session) Load(path string) error {
	text, err := loader.Load(path, s.opts.Encoding)
	if err != nil {
		s.logger.Error("load failed", "path", path, "error", err)
		return loadError(path, err)
	}

	s.source = path
	s.text = text
	s.ranked = nil
	s.state = StateLoaded
	s.logger.Info(filepath.Base(path)+" - loaded successfully",
		"path", path,
		"bytes", len(text),
	)
	return nil
}

// Analyze ranks the words of the loaded text.
func (s *Session) Analyze() (frequency.RankedList, error) {
	if s.state == StateIdle {
		return nil, conversionError("", ErrNotLoaded)
	}

	ranked, words := analyze(s.text, s.opts)
	s.ranked = ranked
	s.state = StateAnalyzed
	s.logger.Info("conversion successful",
		"path", s.source,
		"ranked_words", len(ranked),
		"total_words", words,
		"ranked_total", ranked.Total(),
	)
	return ranked, nil
}

// Export writes the ranked list to path.
func (s *Session) Export(path string) error {
	if s.state != StateAnalyzed && s.state != StateExported {
		return saveError(path, ErrNotAnalyzed)
	}

	existed := storage.FileExists(path)
	if err := export.WriteCSV(s.ranked, path, s.opts.Export); err != nil {
		s.logger.Error("save failed", "path", path, "error", err)
		return saveError(path, err)
	}

	s.state = StateExported
	s.logger.Info("file was saved",
		"path", path,
		"rows", len(s.ranked),
		"append", s.opts.Export.Append,
		"existed", existed,
		"size", storage.FileSize(path),
	)
	return nil
}
