package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gymroom/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestKindedConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
	}{
		{"malformed payload", failure.MalformedPayload("bad shape"), http.StatusBadGateway, failure.KindMalformedPayload},
		{"missing identifier", failure.MissingIdentifier("no id"), http.StatusBadRequest, failure.KindMissingIdentifier},
		{"fetch error", failure.FetchError("down"), http.StatusBadGateway, failure.KindFetchError},
		{"room not ready", failure.RoomNotReady("wait"), http.StatusConflict, failure.KindRoomNotReady},
		{"no driver identity", failure.NoDriverIdentity("login"), http.StatusUnauthorized, failure.KindNoDriverIdentity},
		{"booking in flight", failure.BookingInFlight("busy"), http.StatusConflict, failure.KindBookingInFlight},
		{"backend rejected 400", failure.BackendRejected(http.StatusBadRequest, "full"), http.StatusBadRequest, failure.KindBackendRejected},
		{"backend rejected 500", failure.BackendRejected(http.StatusInternalServerError, "boom"), http.StatusUnprocessableEntity, failure.KindBackendRejected},
		{"backend rejected 200", failure.BackendRejected(http.StatusOK, "odd"), http.StatusUnprocessableEntity, failure.KindBackendRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if got := failure.KindOf(tt.err); got != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got)
			}
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("failed to get room: %w", failure.FetchError("backend returned 500"))

	if !failure.Is(err, failure.KindFetchError) {
		t.Errorf("expected wrapped error to be FetchError, got %s", failure.KindOf(err))
	}

	if failure.GetCode(err) != http.StatusBadGateway {
		t.Errorf("expected code %d, got %d", http.StatusBadGateway, failure.GetCode(err))
	}

	if failure.Is(nil, failure.KindGeneric) {
		t.Error("expected nil error to match no kind")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "forbidden",
			input:    failure.ForbiddenError,
			expected: http.StatusForbidden,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
