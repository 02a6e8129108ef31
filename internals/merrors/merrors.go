// Package merrors defines the error kinds the scaffolding pipeline can fail with.
package merrors

import (
	"errors"
	"fmt"
)

// Kind classifies an Error
type Kind string

const (
	// UserInput means a prompt was cancelled or could not be read
	UserInput Kind = "user input"
	// Validation means a value was rejected by a validator. Prompts recover from this by asking again
	Validation Kind = "validation"
	// Selection means a required multi-choice was left empty
	Selection Kind = "selection"
	// Manifest means the Cargo.toml could not be read, parsed or written
	Manifest Kind = "manifest"
	// Generation means a generated source file could not be written
	Generation Kind = "generation"
	// ExternalProcess means cargo could not be started or exited with a non-zero status
	ExternalProcess Kind = "external process"
)

// ErrCancelled is wrapped by UserInput errors caused by the user aborting a prompt
var ErrCancelled = errors.New("cancelled")

// Error is an error of a specific Kind
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err == nil:
		return e.Msg
	default:
		return fmt.Sprintf("%s: %s", e.Msg, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error of the given kind without a cause
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is New with a format string
func Newf(kind Kind, format string, a ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an Error of the given kind caused by err. It returns nil if err is nil
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of the first Error in err's chain
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is reports whether err's chain contains an Error of the given kind
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Cancelled returns the UserInput error used for aborted prompts
func Cancelled() error {
	return &Error{Kind: UserInput, Msg: "aborted", Err: ErrCancelled}
}
