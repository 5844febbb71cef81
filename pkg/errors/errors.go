// Package errors provides the structured error type returned by every client call.
//
// Every failure reaches the caller as an [*Error] carrying a machine-readable
// [Code]. The codes form a closed set:
//   - TRANSPORT: no response was received (connection, TLS, timeout, cancellation)
//   - DECODE: a 2xx body did not match the expected payload schema
//   - REQUEST: the remote service answered with a 4xx status
//   - SERVER: the remote service answered with a 5xx or unrecognized status
//   - INVALID_INPUT: an argument was rejected locally before any request was built
//
// # Usage
//
//	project, err := client.GetProject(ctx, "sodium")
//	if errors.IsNotFound(err) {
//	    // 404 from the remote service
//	}
//	switch errors.GetCode(err) {
//	case errors.ErrCodeTransport:
//	    // network trouble; the call may be retried by the caller
//	case errors.ErrCodeDecode:
//	    log.Printf("unexpected payload: %s", errors.BodyOf(err))
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the client error taxonomy.
const (
	ErrCodeTransport    Code = "TRANSPORT"
	ErrCodeDecode       Code = "DECODE"
	ErrCodeRequest      Code = "REQUEST"
	ErrCodeServer       Code = "SERVER"
	ErrCodeInvalidInput Code = "INVALID_INPUT"
)

// MaxBodyExcerpt caps how much of a raw response body an Error retains.
const MaxBodyExcerpt = 64 << 10

// maxPrintedBody caps the body excerpt included in Error().
const maxPrintedBody = 256

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Status  int    // HTTP status for REQUEST and SERVER errors (0 otherwise)
	Reason  string // Remote error identifier for REQUEST errors (e.g. "not_found")
	Body    []byte // Raw response body for DECODE and SERVER errors
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	if len(e.Body) > 0 && e.Code != ErrCodeRequest {
		msg += fmt.Sprintf(" [body: %s]", excerpt(e.Body, maxPrintedBody))
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Transport reports a failure that happened before any response was received.
func Transport(cause error) *Error {
	return &Error{Code: ErrCodeTransport, Message: "request failed", Cause: cause}
}

// Decode reports a 2xx body that could not be decoded into the expected payload.
// The raw body is retained for diagnosis.
func Decode(body []byte, cause error) *Error {
	return &Error{Code: ErrCodeDecode, Message: "unexpected response payload", Body: clip(body), Cause: cause}
}

// Request reports a 4xx response. An empty message is replaced by the status text.
func Request(status int, reason, message string) *Error {
	if message == "" {
		message = statusText(status)
	}
	return &Error{Code: ErrCodeRequest, Message: message, Status: status, Reason: reason}
}

// Server reports a 5xx or otherwise unrecognized response.
func Server(status int, body []byte) *Error {
	return &Error{Code: ErrCodeServer, Message: statusText(status), Status: status, Body: clip(body)}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// BodyOf returns the raw response body retained by err, if any.
func BodyOf(err error) []byte {
	var e *Error
	if errors.As(err, &e) {
		return e.Body
	}
	return nil
}

// IsNotFound reports whether err is a REQUEST error with status 404.
func IsNotFound(err error) bool {
	return Is(err, ErrCodeRequest) && StatusCode(err) == http.StatusNotFound
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func statusText(status int) string {
	if s := http.StatusText(status); s != "" {
		return s
	}
	return fmt.Sprintf("unrecognized status %d", status)
}

func clip(body []byte) []byte {
	if len(body) > MaxBodyExcerpt {
		body = body[:MaxBodyExcerpt]
	}
	return append([]byte(nil), body...)
}

func excerpt(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
