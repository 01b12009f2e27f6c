package grid

import (
	"errors"
	"fmt"
)

// Kind classifies a grid operation failure so callers can branch on the
// reason rather than a bare boolean.
type Kind int

const (
	// KindInvalidArgument is a negative height at construction.
	KindInvalidArgument Kind = iota
	// KindIndexOutOfRange is a toggle or access outside [0, height).
	KindIndexOutOfRange
	// KindSizeMismatch is a SetState/Load payload whose length differs
	// from the grid height.
	KindSizeMismatch
	// KindInvalidValue is a cell value outside {0,1}.
	KindInvalidValue
	// KindIO is a file read or write failure during Save/Load.
	KindIO
	// KindParse is malformed file content during Load.
	KindParse
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindIndexOutOfRange:
		return "IndexOutOfRange"
	case KindSizeMismatch:
		return "SizeMismatch"
	case KindInvalidValue:
		return "InvalidValue"
	case KindIO:
		return "IOError"
	case KindParse:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// Sentinel errors for errors.Is matching. Every *Error returned by this
// package matches exactly one of them through its Kind.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrSizeMismatch    = errors.New("size mismatch")
	ErrInvalidValue    = errors.New("invalid value")
	ErrIO              = errors.New("io error")
	ErrParse           = errors.New("parse error")
)

// Error is the typed failure returned by grid operations.
type Error struct {
	Kind    Kind
	Message string
	Err     error // Underlying cause, if any (IO and parse failures)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grid: [%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("grid: [%s] %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel corresponding to the error's Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrIndexOutOfRange:
		return e.Kind == KindIndexOutOfRange
	case ErrSizeMismatch:
		return e.Kind == KindSizeMismatch
	case ErrInvalidValue:
		return e.Kind == KindInvalidValue
	case ErrIO:
		return e.Kind == KindIO
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

func indexError(index, height int) error {
	return &Error{
		Kind:    KindIndexOutOfRange,
		Message: fmt.Sprintf("index %d out of bounds for grid of height %d", index, height),
	}
}

func ioError(op, path string, err error) error {
	return &Error{
		Kind:    KindIO,
		Message: fmt.Sprintf("%s %s", op, path),
		Err:     err,
	}
}
