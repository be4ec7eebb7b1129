package ferrox

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a structured dispatch failure that renders as the JSON error body
// of a response. The status code is owned by the dispatcher; handlers never
// set it.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// Dispatch failure responses, one per terminal failure state of the request
// pipeline.
var (
	ErrRouteNotFound    = Error{Status: http.StatusNotFound, Code: "ROUTE_NOT_FOUND", Message: http.StatusText(http.StatusNotFound)}
	ErrMethodNotAllowed = Error{Status: http.StatusMethodNotAllowed, Code: "METHOD_NOT_ALLOWED", Message: http.StatusText(http.StatusMethodNotAllowed)}
	ErrMalformedBody    = Error{Status: http.StatusBadRequest, Code: "MALFORMED_BODY", Message: "request body is not valid JSON"}
	ErrHandlerFailure   = Error{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: http.StatusText(http.StatusInternalServerError)}
)

// Declaration and build errors. These are fatal at startup: a broken route
// declaration prevents the server from starting instead of serving a partial
// routing table.
var (
	ErrInvalidTemplate = errors.New("invalid route template")
	ErrDuplicateParam  = fmt.Errorf("%w: duplicate param key", ErrInvalidTemplate)
	ErrInvalidMethod   = errors.New("invalid http method")
	ErrNilHandler      = errors.New("route handler cannot be nil")
	ErrFrozen          = errors.New("route collector is frozen")
)

// toError converts a recovered panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
