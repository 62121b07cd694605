package petstore

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidAssociation = errors.New("invalid association")
	ErrInvalidInput       = errors.New("invalid input")
)

// Error lleva un mensaje legible para el cliente y el tipo (Kind) para mapear el status.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func invalidAssociation(format string, args ...any) error {
	return &Error{Kind: ErrInvalidAssociation, Msg: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}
