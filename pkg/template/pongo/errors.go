package pongo

import (
	"errors"

	"github.com/flosch/pongo2/v6"
)

// Error is a template failure with its location.
type Error struct {
	file   string
	line   int
	column int
	Err    error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// File returns the template file the error was raised in.
func (e *Error) File() string { return e.file }

// Line returns the 1-based line, or 0 when pongo2 did not report one.
func (e *Error) Line() int { return e.line }

// Column returns the 1-based column, or 0 when unknown.
func (e *Error) Column() int { return e.column }

func convertError(path string, err error) error {
	var pe *pongo2.Error
	if !errors.As(err, &pe) {
		return &Error{file: path, Err: err}
	}

	out := &Error{file: pe.Filename, line: pe.Line, column: pe.Column, Err: err}
	if out.file == "" {
		out.file = path
	}
	if pe.OrigError != nil {
		out.Err = pe.OrigError
	}
	return out
}
