// Package export writes ranked word counts to comma-space separated files.
package export

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"wordfreq/internal/frequency"
	"wordfreq/internal/storage"
)

// Separator joins fields on a line.
const Separator = ", "

// Options controls the file layout and write mode.
type Options struct {
	// Append adds a new header+rows block to the end of an existing file
	// instead of replacing it.
	Append  bool
	Quoting Quoting
	Order   ColumnOrder
	// Columns overrides WordCountColumns when non-empty.
	Columns []Column
}

func (o Options) columns() []Column {
	cols := o.Columns
	if len(cols) == 0 {
		cols = WordCountColumns
	}
	return orderColumns(cols, o.Order)
}

// Header returns the header line fields for opts.
func Header(opts Options) []string {
	cols := opts.columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// Encode writes one header line followed by one line per row.
func Encode(w io.Writer, rows []frequency.WordCount, opts Options) error {
	cols := opts.columns()
	bw := bufio.NewWriter(w)
	fields := make([]string, len(cols))

	for i, c := range cols {
		fields[i] = formatField(c.Name, opts.Quoting)
	}
	writeLine(bw, fields)

	for _, row := range rows {
		for i, c := range cols {
			fields[i] = formatField(c.Value(row), opts.Quoting)
		}
		writeLine(bw, fields)
	}
	return bw.Flush()
}

func writeLine(bw *bufio.Writer, fields []string) {
	bw.WriteString(strings.Join(fields, Separator))
	bw.WriteByte('\n')
}

// WriteCSV writes rows to path as UTF-8. In append mode the block is added
// after any existing content; otherwise the file is replaced atomically.
// Either the whole block is written or an error is returned.
func WriteCSV(rows []frequency.WordCount, path string, opts Options) error {
	var buf bytes.Buffer
	if err := Encode(&buf, rows, opts); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if opts.Append {
		return storage.AppendFileSync(path, buf.Bytes(), storage.FilePerm)
	}
	return storage.AtomicWriteFile(path, buf.Bytes(), storage.FilePerm)
}
