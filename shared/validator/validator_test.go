package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"gymroom/shared/failure"
	"gymroom/shared/validator"
)

type bookingShape struct {
	RoomID   int    `json:"RoomID"   validate:"required,gt=0"`
	DriverID int    `json:"DriverID" validate:"required,gt=0"`
	Status   string `json:"Status"   validate:"required,oneof=Confirmed Cancelled"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingShape
		expectError bool
		contains    string
	}{
		{
			name:        "valid booking",
			data:        &bookingShape{RoomID: 5, DriverID: 9, Status: "Confirmed"},
			expectError: false,
		},
		{
			name:        "missing room id",
			data:        &bookingShape{DriverID: 9, Status: "Confirmed"},
			expectError: true,
			contains:    "RoomID is required",
		},
		{
			name:        "negative driver id",
			data:        &bookingShape{RoomID: 5, DriverID: -1, Status: "Confirmed"},
			expectError: true,
			contains:    "DriverID must be greater than 0",
		},
		{
			name:        "unknown status",
			data:        &bookingShape{RoomID: 5, DriverID: 9, Status: "Maybe"},
			expectError: true,
			contains:    "Status must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if !tt.expectError {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
			}

			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected message to contain %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "positive id", field: 3, tag: "gt=0", expectError: false},
		{name: "zero id", field: 0, tag: "gt=0", expectError: true},
		{name: "valid oneof", field: "admin", tag: "oneof=user admin guest", expectError: false},
		{name: "invalid oneof", field: "root", tag: "oneof=user admin guest", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"RoomID":1,"DriverID":2,"Status":"Cancelled"}`, expectError: false},
		{name: "invalid field", jsonBody: `{"RoomID":1,"DriverID":0,"Status":"Cancelled"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"RoomID":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingShape
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
