package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure for presentation.
type Kind string

const (
	KindGeneric           Kind = ""
	KindMalformedPayload  Kind = "MalformedPayload"
	KindMissingIdentifier Kind = "MissingIdentifier"
	KindFetchError        Kind = "FetchError"
	KindRoomNotReady      Kind = "RoomNotReady"
	KindNoDriverIdentity  Kind = "NoDriverIdentity"
	KindBackendRejected   Kind = "BackendRejected"
	KindBookingInFlight   Kind = "BookingInFlight"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// ErrSuperseded is returned to a request whose result was discarded because a newer one was issued.
var ErrSuperseded = errors.New("superseded by a newer request")

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// MalformedPayload reports a backend body that does not have the expected shape.
func MalformedPayload(msg string) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: msg,
		Kind:    KindMalformedPayload,
	}
}

// MissingIdentifier reports an absent or unusable route identifier.
func MissingIdentifier(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindMissingIdentifier,
	}
}

// FetchError reports a non-success status or a transport failure talking to the backend.
func FetchError(msg string) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: msg,
		Kind:    KindFetchError,
	}
}

func RoomNotReady(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindRoomNotReady,
	}
}

func NoDriverIdentity(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
		Kind:    KindNoDriverIdentity,
	}
}

func BookingInFlight(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindBookingInFlight,
	}
}

// BackendRejected carries the error message from a non-success backend response.
// Backend client errors keep their status; anything else is reported as 422.
func BackendRejected(status int, msg string) error {
	code := status
	if code < http.StatusBadRequest || code >= http.StatusInternalServerError {
		code = http.StatusUnprocessableEntity
	}

	return &Failure{
		Code:    code,
		Message: msg,
		Kind:    KindBackendRejected,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KindOf returns the Kind of the first Failure in the error chain.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindGeneric
}

// Is reports whether err carries a Failure of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
