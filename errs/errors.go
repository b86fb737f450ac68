package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the CLI layer
type Kind int

const (
	// KindUsage means the invocation arguments could not be resolved
	KindUsage Kind = iota + 1
	// KindApplication means the search could not run, e.g. the file could not be read
	KindApplication
)

// Label returns the prefix printed before the error message
func (k Kind) Label() string {
	switch k {
	case KindUsage:
		return "Problem parsing arguments"
	case KindApplication:
		return "Application error"
	default:
		return "Error"
	}
}

// ExitCode returns the process exit code for the kind
func (k Kind) ExitCode() int {
	return 1
}

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// Error is an error tagged with its Kind
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Usage creates a usage error with a fixed message
func Usage(msg string) *Error {
	return &Error{Kind: KindUsage, Msg: msg}
}

// Usagef wraps err as a usage error with a formatted message
func Usagef(err error, format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Application wraps err as an application error
func Application(err error) *Error {
	return &Error{Kind: KindApplication, Err: err}
}

// Applicationf wraps err as an application error with a formatted message
func Applicationf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindApplication, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the Kind of err. Untagged errors are treated as application errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindApplication
}
