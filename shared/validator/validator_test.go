package validator_test

import (
	"strings"
	"testing"

	"arthive/shared/validator"
)

type subscribePayload struct {
	Name     string `validate:"required"                 json:"name"`
	Email    string `validate:"required,email"           json:"email"`
	Age      int    `validate:"gte=0,lte=120"            json:"age"`
	Category string `validate:"oneof=user admin guest"   json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *subscribePayload
		expectError bool
	}{
		{
			name: "valid struct",
			data: &subscribePayload{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &subscribePayload{
				Email:    "jane@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &subscribePayload{
				Name:     "Jane Doe",
				Email:    "not-an-email",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &subscribePayload{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Age:      150,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &subscribePayload{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Age:      25,
				Category: "superuser",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email", expectError: false},
		{name: "invalid email", field: "not-an-email", tag: "email", expectError: true},
		{name: "valid uuid", field: "11111111-1111-1111-1111-111111111111", tag: "required,uuid", expectError: false},
		{name: "invalid uuid", field: "not-a-uuid", tag: "required,uuid", expectError: true},
		{name: "valid latitude", field: 51.5074, tag: "latitude", expectError: false},
		{name: "latitude out of range", field: 123.0, tag: "latitude", expectError: true},
		{name: "valid oneof", field: "admin", tag: "oneof=user admin guest", expectError: false},
		{name: "invalid oneof", field: "superuser", tag: "oneof=user admin guest", expectError: true},
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
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Jane Doe","email":"jane@example.com","age":25,"category":"user"}`,
			expectError: false,
		},
		{
			name:        "valid JSON failing validation",
			jsonBody:    `{"name":"Jane Doe","email":"not-an-email","age":25,"category":"user"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Jane Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data subscribePayload
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestMimetypeValidation(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		tag         string
		expectError bool
	}{
		{
			name:        "png data uri allowed",
			field:       "data:image/png;base64,iVBORw0KGgo=",
			tag:         "mimetypes=image/png image/jpeg",
			expectError: false,
		},
		{
			name:        "gif data uri rejected",
			field:       "data:image/gif;base64,R0lGODlh",
			tag:         "mimetypes=image/png image/jpeg",
			expectError: true,
		},
		{
			name:        "plain string rejected",
			field:       "https://cdn.example.com/cover.jpg",
			tag:         "mimetypes=image/png image/jpeg",
			expectError: true,
		},
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

func TestValidationMessages(t *testing.T) {
	data := &subscribePayload{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
