package export

import (
	"fmt"
	"strings"
)

// Quoting selects how fields containing special characters are written.
type Quoting int

const (
	// QuoteMinimal wraps a field in double quotes when it contains a comma,
	// a double quote, CR or LF. Inner quotes are doubled.
	QuoteMinimal Quoting = iota
	// QuoteNone writes every field verbatim. Fields containing the
	// separator cannot be read back unambiguously.
	QuoteNone
)

func (q Quoting) String() string {
	switch q {
	case QuoteMinimal:
		return "minimal"
	case QuoteNone:
		return "none"
	default:
		return fmt.Sprintf("Quoting(%d)", int(q))
	}
}

// ParseQuoting parses "minimal" or "none".
func ParseQuoting(s string) (Quoting, error) {
	switch strings.ToLower(s) {
	case "", "minimal":
		return QuoteMinimal, nil
	case "none":
		return QuoteNone, nil
	default:
		return 0, fmt.Errorf("unknown quoting mode: %q", s)
	}
}

func formatField(s string, q Quoting) string {
	if q == QuoteNone || !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
