package claude

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed request. The string value is what callers see
// in the response body's "error" field.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation_error"
	KindTimeout    ErrorKind = "timeout"
	KindCLI        ErrorKind = "cli_error"
	KindSpawn      ErrorKind = "spawn_error"
	KindUnknown    ErrorKind = "unknown_error"
)

// Error carries a classified CLI invocation failure plus its wrapped cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("claude: %s (%s)", e.Kind, e.Message)
	}
	return fmt.Sprintf("claude: %s (%s): %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HTTPStatus maps the error kind to the response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
