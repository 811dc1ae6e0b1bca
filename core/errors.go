package core

import "fmt"

// ErrorKind classifies a client failure. Connection and query errors
// are reported per statement and never end the session; config errors
// abort startup.
type ErrorKind int

const (
	ErrConnection ErrorKind = iota
	ErrQuery
	ErrInvalidQuery
	ErrConfig
	ErrIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrConnection:
		return "connection error"
	case ErrQuery:
		return "query error"
	case ErrInvalidQuery:
		return "invalid query"
	case ErrConfig:
		return "config error"
	case ErrIO:
		return "io error"
	default:
		return "error"
	}
}

// Error carries a kind alongside the wrapped cause so callers can match
// with errors.As and still unwrap the driver error.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an Error without an underlying cause.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error around a cause.
func WrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
