package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleText is a short passage with repeated words in mixed case.
const SampleText = `The quick brown fox jumps over the lazy dog.
THE DOG sleeps; the fox runs -- 3 times, then the fox rests.`

// SampleRanking is the expected ranked output of SampleText.
var SampleRanking = []struct {
	Word  string
	Count int
}{
	{"the", 5},
	{"fox", 3},
	{"dog", 2},
	{"brown", 1},
	{"jumps", 1},
	{"lazy", 1},
	{"over", 1},
	{"quick", 1},
	{"rests", 1},
	{"runs", 1},
	{"sleeps", 1},
	{"then", 1},
	{"times", 1},
}

// WriteFile creates name inside dir with the given content and returns its
// path.
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile %s: %v", path, err)
	}
	return path
}

// ReadLines returns the lines of the file at path without trailing newline.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile %s: %v", path, err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// AssertFileExists checks that a file exists at the given path.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks that nothing exists at the given path.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file at %s", path)
	}
}
