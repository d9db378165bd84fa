package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"wordfreq/internal/testutil"
)

func noEnv(string) string { return "" }

func TestRun_ExportAndPrint(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", []byte(testutil.SampleText))
	out := filepath.Join(dir, "out.csv")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-in", in, "-out", out, "-print", "-top", "2"}, &stdout, &stderr, noEnv)
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
	}

	want := []string{"Count, Word", "5, the", "3, fox"}
	if lines := testutil.ReadLines(t, out); !slices.Equal(lines, want) {
		t.Errorf("csv = %q, want %q", lines, want)
	}
	if !strings.Contains(stdout.String(), "Counts: 5 the") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "loaded successfully") {
		t.Errorf("expected load log line, stderr = %q", stderr.String())
	}
}

func TestRun_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", []byte("b a b"))
	out := filepath.Join(dir, "out.csv")
	cfgPath := testutil.WriteFile(t, dir, "wordfreq.yaml", []byte("column_order: declared\n"))
	env := func(k string) string {
		switch k {
		case "WORDFREQ_INPUT":
			return in
		case "WORDFREQ_OUTPUT":
			return out
		}
		return ""
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", cfgPath}, &stdout, &stderr, env); code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
	}
	want := []string{"Word, Count", "b, 2", "a, 1"}
	if lines := testutil.ReadLines(t, out); !slices.Equal(lines, want) {
		t.Errorf("csv = %q, want %q", lines, want)
	}
}

func TestRun_AppendFlag(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", []byte("hi"))
	out := filepath.Join(dir, "out.csv")

	for i := 0; i < 2; i++ {
		var stdout, stderr bytes.Buffer
		if code := run([]string{"-in", in, "-out", out, "-append"}, &stdout, &stderr, noEnv); code != exitOK {
			t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
		}
	}
	want := []string{"Count, Word", "1, hi", "Count, Word", "1, hi"}
	if lines := testutil.ReadLines(t, out); !slices.Equal(lines, want) {
		t.Errorf("csv = %q, want %q", lines, want)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", []byte("hi"))

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"no input", []string{"-print"}},
		{"nothing to do", []string{"-in", in}},
		{"bad quoting", []string{"-in", in, "-print", "-quote", "always"}},
		{"negative top", []string{"-in", in, "-print", "-top", "-1"}},
		{"missing config", []string{"-config", filepath.Join(dir, "nope.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr, noEnv); code != exitUsage {
				t.Errorf("exit = %d, want %d", code, exitUsage)
			}
		})
	}
}

func TestRun_LoadFailure(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-in", filepath.Join(dir, "missing.txt"), "-print"}, &stdout, &stderr, noEnv)
	if code != exitFailure {
		t.Fatalf("exit = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr.String(), "couldn't load file") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", []byte("hi"))
	out := filepath.Join(dir, "missing", "out.csv")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-in", in, "-out", out}, &stdout, &stderr, noEnv)
	if code != exitFailure {
		t.Fatalf("exit = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr.String(), "couldn't save file") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output should not exist")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRun_HelpListsNormalizers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr, noEnv); code != exitUsage {
		t.Fatalf("exit = %d, want %d", code, exitUsage)
	}
	if !strings.Contains(stderr.String(), "invariant or a language tag") {
		t.Errorf("usage does not list normalizers: %s", stderr.String())
	}
}
