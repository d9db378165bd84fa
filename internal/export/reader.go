package export

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"wordfreq/internal/frequency"
)

var ErrUnterminatedQuote = errors.New("unterminated quoted field")

// Block is one header line and the rows that follow it. A file written
// twice in append mode holds two blocks.
type Block struct {
	Header []string
	Rows   [][]string
}

// WordCounts converts the rows of b back to WordCount values using the
// "Word" and "Count" header columns.
func (b Block) WordCounts() ([]frequency.WordCount, error) {
	wi := slices.Index(b.Header, "Word")
	ci := slices.Index(b.Header, "Count")
	if wi < 0 || ci < 0 {
		return nil, fmt.Errorf("header %v lacks Word or Count column", b.Header)
	}

	out := make([]frequency.WordCount, 0, len(b.Rows))
	for i, row := range b.Rows {
		if len(row) != len(b.Header) {
			return nil, fmt.Errorf("row %d: %d fields, header has %d", i, len(row), len(b.Header))
		}
		n, err := strconv.Atoi(row[ci])
		if err != nil {
			return nil, fmt.Errorf("row %d: count: %w", i, err)
		}
		out = append(out, frequency.WordCount{Word: row[wi], Count: n})
	}
	return out, nil
}

// ReadCSV reads a file written by WriteCSV. Every line equal to the first
// line starts a new block.
func ReadCSV(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	records, err := parseRecords(strings.TrimPrefix(string(data), "\ufeff"))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	var blocks []Block
	for _, rec := range records {
		if slices.Equal(rec, header) {
			blocks = append(blocks, Block{Header: rec})
			continue
		}
		last := &blocks[len(blocks)-1]
		last.Rows = append(last.Rows, rec)
	}
	return blocks, nil
}

func parseRecords(data string) ([][]string, error) {
	var (
		records  [][]string
		record   []string
		field    strings.Builder
		inQuotes bool
		quoted   bool
	)
	endField := func() {
		record = append(record, field.String())
		field.Reset()
		quoted = false
	}

	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(data) && data[i+1] == '"' {
					field.WriteByte('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			field.WriteByte(c)
			i++
		case c == '"' && field.Len() == 0 && !quoted:
			inQuotes, quoted = true, true
			i++
		case strings.HasPrefix(data[i:], Separator):
			endField()
			i += len(Separator)
		case c == '\r' || c == '\n':
			endField()
			records = append(records, record)
			record = nil
			if c == '\r' && i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			i++
		default:
			field.WriteByte(c)
			i++
		}
	}

	if inQuotes {
		return nil, ErrUnterminatedQuote
	}
	if field.Len() > 0 || len(record) > 0 {
		endField()
		records = append(records, record)
	}
	return records, nil
}
