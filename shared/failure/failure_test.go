package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"arthive/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: failure.BadRequestFromString("nope"), want: http.StatusBadRequest},
		{name: "not found", err: failure.NotFound("exhibition not found"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("email already registered"), want: http.StatusConflict},
		{name: "unauthorized", err: failure.Unauthorized("invalid token"), want: http.StatusUnauthorized},
		{name: "plain error maps to 500", err: errors.New("db down"), want: http.StatusInternalServerError},
		{name: "wrapped failure keeps its code", err: fmt.Errorf("outer: %w", failure.NotFound("gone")), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestFailureMessage(t *testing.T) {
	err := failure.BadRequestFromString("invalid coordinates")
	assert.EqualError(t, err, "invalid coordinates")
}
