package export

import (
	"bufio"
	"fmt"
	"io"

	"wordfreq/internal/frequency"
)

// WriteReport prints rows as a human readable listing, one
// "Counts: <n> <word>" line per entry.
func WriteReport(w io.Writer, rows []frequency.WordCount) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "The number of counts for each words are:")
	for _, row := range rows {
		fmt.Fprintf(bw, "Counts: %d %s\n", row.Count, row.Word)
	}
	return bw.Flush()
}
