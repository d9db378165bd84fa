// Package loader reads source text files into memory.
package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is used when no encoding name is given.
const DefaultEncoding = "utf-8"

var ErrInvalidText = errors.New("file is not valid text in the requested encoding")

// LookupEncoding resolves a WHATWG encoding label such as "utf-8",
// "windows-1252", "latin1" or "utf-16le".
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// Load reads the whole file at path and decodes it to a UTF-8 string. A
// leading byte order mark is dropped.
func Load(path, encodingName string) (string, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	var text string
	if name, _ := htmlindex.Name(enc); name == DefaultEncoding {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("decode %s as %s: %w", path, DefaultEncoding, ErrInvalidText)
		}
		text = string(data)
	} else {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", path, errors.Join(ErrInvalidText, err))
		}
		text = string(decoded)
	}
	return strings.TrimPrefix(text, "\ufeff"), nil
}
