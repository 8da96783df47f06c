package frontpage

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are stable across implementations: callers branch on the code,
// never on the message text.
const (
	ECONNECTION = "connection"         // could not reach the site, or it refused the request
	ETIMEOUT    = "timeout"            // the fetch deadline elapsed
	EPARSE      = "parse"              // the payload could not be parsed as markup or feed
	ESTRUCTURE  = "structure_mismatch" // markup parsed but no selector strategy matched
	EINVALID    = "invalid"            // caller provided invalid input
	EINTERNAL   = "internal"           // anything unclassified
)

// Error represents an application error. Errors carry a machine-readable
// code and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("frontpage error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
