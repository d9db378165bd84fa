package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrLoad       = errors.New("couldn't load file")
	ErrConversion = errors.New("couldn't convert file")
	ErrSave       = errors.New("couldn't save file")

	ErrNotLoaded   = errors.New("no text loaded")
	ErrNotAnalyzed = errors.New("no analysis to export")
)

// Error reports a failed pipeline step. Kind is one of ErrLoad,
// ErrConversion or ErrSave; Err is the underlying cause.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func loadError(path string, err error) error {
	return &Error{Kind: ErrLoad, Path: path, Err: err}
}

func conversionError(path string, err error) error {
	return &Error{Kind: ErrConversion, Path: path, Err: err}
}

func saveError(path string, err error) error {
	return &Error{Kind: ErrSave, Path: path, Err: err}
}
