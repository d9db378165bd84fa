package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"wordfreq/internal/frequency"
)

func sampleRows() []frequency.WordCount {
	return []frequency.WordCount{{Word: "the", Count: 5}, {Word: "fox", Count: 2}}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleRows(), Options{}); err != nil {
		t.Fatal(err)
	}
	want := "Count, Word\n5, the\n2, fox\n"
	if buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestEncode_DeclaredOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleRows(), Options{Order: Declared}); err != nil {
		t.Fatal(err)
	}
	want := "Word, Count\nthe, 5\nfox, 2\n"
	if buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, Options{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Count, Word\n" {
		t.Errorf("Encode = %q, want header only", buf.String())
	}
}

func TestEncode_Quoting(t *testing.T) {
	rows := []frequency.WordCount{{Word: `a, "b"`, Count: 1}}

	tests := []struct {
		name    string
		quoting Quoting
		want    string
	}{
		{"minimal", QuoteMinimal, "Count, Word\n1, \"a, \"\"b\"\"\"\n"},
		{"none", QuoteNone, "Count, Word\n1, a, \"b\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, rows, Options{Quoting: tt.quoting}); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("Encode = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestEncode_CustomColumns(t *testing.T) {
	cols := []Column{
		{Name: "Length", Value: func(wc frequency.WordCount) string { return strings.Repeat("*", len(wc.Word)) }},
		WordCountColumns[0],
	}
	var buf bytes.Buffer
	if err := Encode(&buf, sampleRows()[:1], Options{Columns: cols}); err != nil {
		t.Fatal(err)
	}
	if want := "Length, Word\n***, the\n"; buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestHeader(t *testing.T) {
	if got := Header(Options{}); !slices.Equal(got, []string{"Count", "Word"}) {
		t.Errorf("Header = %v", got)
	}
	if got := Header(Options{Order: Declared}); !slices.Equal(got, []string{"Word", "Count"}) {
		t.Errorf("Header(declared) = %v", got)
	}
	// The declared list itself is never reordered.
	if WordCountColumns[0].Name != "Word" {
		t.Error("WordCountColumns was mutated")
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(sampleRows(), path, Options{}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "Count, Word" {
		t.Errorf("header = %q", lines[0])
	}
	for i, row := range sampleRows() {
		fields := strings.Split(lines[i+1], ", ")
		if len(fields) != 2 || fields[1] != row.Word || fields[0] != strconv.Itoa(row.Count) {
			t.Errorf("line %d = %q, want %v", i+1, lines[i+1], row)
		}
	}

	blocks, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	got, err := blocks[0].WordCounts()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, sampleRows()) {
		t.Errorf("round trip = %v, want %v", got, sampleRows())
	}
}

func TestWriteCSV_OverwriteReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(sampleRows(), path, Options{}); err != nil {
		t.Fatal(err)
	}
	if err := WriteCSV(sampleRows()[:1], path, Options{}); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if want := "Count, Word\n5, the\n"; string(data) != want {
		t.Errorf("content = %q, want %q", data, want)
	}
}

func TestWriteCSV_AppendDuplicatesBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	opts := Options{Append: true}
	for i := 0; i < 2; i++ {
		if err := WriteCSV(sampleRows(), path, opts); err != nil {
			t.Fatal(err)
		}
	}

	data, _ := os.ReadFile(path)
	block := "Count, Word\n5, the\n2, fox\n"
	if string(data) != block+block {
		t.Errorf("content = %q, want two blocks", data)
	}

	blocks, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	for i, b := range blocks {
		if len(b.Rows) != 2 {
			t.Errorf("block %d has %d rows, want 2", i, len(b.Rows))
		}
	}
}

func TestWriteCSV_AppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.csv")
	if err := WriteCSV(nil, path, Options{Append: true}); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "Count, Word\n" {
		t.Errorf("content = %q, want header only", data)
	}
}

func TestWriteCSV_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	for _, appendMode := range []bool{false, true} {
		err := WriteCSV(sampleRows(), path, Options{Append: appendMode})
		if err == nil {
			t.Errorf("append=%v: expected error for missing directory", appendMode)
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("append=%v: error %v does not wrap os.ErrNotExist", appendMode, err)
		}
	}
}

func TestParseColumnOrder(t *testing.T) {
	for in, want := range map[string]ColumnOrder{"": Alphabetical, "alphabetical": Alphabetical, "Declared": Declared} {
		got, err := ParseColumnOrder(in)
		if err != nil || got != want {
			t.Errorf("ParseColumnOrder(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColumnOrder("random"); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestParseQuoting(t *testing.T) {
	for in, want := range map[string]Quoting{"": QuoteMinimal, "minimal": QuoteMinimal, "NONE": QuoteNone} {
		got, err := ParseQuoting(in)
		if err != nil || got != want {
			t.Errorf("ParseQuoting(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseQuoting("all"); err == nil {
		t.Error("expected error for unknown quoting mode")
	}
}
