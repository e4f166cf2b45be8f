package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies a failure for the HTTP layer. The set is closed;
// anything unclassified is treated as Storage.
type Kind int

const (
	Validation Kind = iota + 1
	Authentication
	Authorization
	NotFound
	Conflict
	Storage
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the classification of err, or Storage when err does
// not carry one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}

// Message returns the caller-safe message. Storage details never reach
// the client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Storage {
		return e.Message
	}
	return "something went wrong on the server"
}

// FromDB translates gorm errors at the repository boundary so raw
// driver errors never leak upward.
func FromDB(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(NotFound, notFoundMsg, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(Conflict, "resource already exists with this unique constraint", err)
	default:
		return Wrap(Storage, "database error", err)
	}
}
