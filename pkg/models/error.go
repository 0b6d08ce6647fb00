package models

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	InvalidSessionIDErr = "invalid session id"
	NoSuchElementErr    = "no such element"
	JavascriptErr       = "javascript error"
	UnknownCommandErr   = "unknown command"
)

type ErrorWithCode interface {
	error
	Code() int
}

// UsageError reports an SDK call that is illegal for the negotiated session type.
// It is always returned to the caller, since it points to an integration bug.
type UsageError struct {
	Op      string
	Message string
}

func NewUsageError(op, message string) *UsageError {
	return &UsageError{Op: op, Message: message}
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Invalid function call - %s(). %s", e.Op, e.Message)
}

func IsUsageError(err error) bool {
	var e *UsageError
	return errors.As(err, &e)
}

// W3CError is a WebDriver error response
// see details at https://www.w3.org/TR/webdriver2/#errors
type W3CError struct {
	code  int
	Value ErrorBody `json:"value"`
}

type ErrorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StackTrace string `json:"stacktrace"`
}

func NewW3CErr(code int, errText, message string) *W3CError {
	return &W3CError{
		code: code,
		Value: ErrorBody{
			Error:   errText,
			Message: message,
		},
	}
}

func (w *W3CError) Error() string {
	if w.Value.Message == "" {
		return w.Value.Error
	}
	return fmt.Sprintf("%s: %s", w.Value.Error, w.Value.Message)
}

func (w *W3CError) Code() int {
	return w.code
}

// WithCode sets the HTTP status the error was received with.
func (w *W3CError) WithCode(code int) *W3CError {
	w.code = code
	return w
}

func IsW3CError(err error, errText string) bool {
	var e *W3CError
	if errors.As(err, &e) {
		return e.Value.Error == errText
	}
	return false
}
