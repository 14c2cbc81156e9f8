package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by the core wraps exactly one of them so
// the HTTP adapter can map it onto a status code with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
)

// Error is a classified business error. Conflicts lists the reference codes
// of the bookings that caused an availability conflict, if any.
type Error struct {
	Kind      error
	Message   string
	Conflicts []string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound reports that an entity id does not resolve.
func NotFound(entity string, id any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s %v not found", entity, id)}
}

// Conflict reports an overlap or a duplicate, carrying the offending codes.
func Conflict(msg string, codes ...string) error {
	return &Error{Kind: ErrConflict, Message: msg, Conflicts: codes}
}

func InvalidState(format string, args ...any) error {
	return &Error{Kind: ErrInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// ConflictCodes extracts the conflicting reference codes from err, if any.
func ConflictCodes(err error) []string {
	var de *Error
	if errors.As(err, &de) {
		return de.Conflicts
	}
	return nil
}
