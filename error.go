package pdfanalyze

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// ETRANSPORT and EPROTOCOL describe the two failure modes of talking to
// the backing service: the service answered with a non-success status,
// or it answered successfully with a body we could not make sense of.
const (
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	EINTERNAL  = "internal"
	ETRANSPORT = "transport"
	EPROTOCOL  = "protocol"
)

// Error represents an application error. Errors carry a machine-readable
// code and a human-readable message. Transport errors additionally carry
// the HTTP status code and the raw response body, because the backing
// service may return human-readable diagnostics rather than structured
// JSON on failure.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string

	// HTTP status code for ETRANSPORT errors, zero otherwise.
	StatusCode int

	// Raw response body for ETRANSPORT errors.
	Body string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pdfanalyze error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// ErrorStatus unwraps an application error and returns the HTTP status
// code it carries, or zero if the error carries none.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
