package template

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound is matched by NotFoundError.
	ErrTemplateNotFound = errors.New("template: not found")
	// ErrNoLoader is returned when a template resolves but nothing can run it.
	ErrNoLoader = errors.New("template: no loader configured")
)

// NotFoundError reports that no candidate file exists for a type.
type NotFoundError struct {
	Type       string
	Candidates []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no template file found for `%s`", e.Type)
}

// Is lets errors.Is match ErrTemplateNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// LineError is implemented by loader errors that know where they happened.
type LineError interface {
	error
	Line() int
}

// ExecutionError wraps a failure raised while a template was running.
type ExecutionError struct {
	// Template is the base name of the template file.
	Template string
	// Path is the full resolved path.
	Path string
	// Line is the failing line, or 0 when unknown.
	Line int
	Err  error
}

func (e *ExecutionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (%s:%d)", e.Err.Error(), e.Template, e.Line)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Template)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
