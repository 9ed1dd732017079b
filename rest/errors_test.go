package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "validation errors joined",
			err: &APIError{
				StatusCode: 400,
				Code:       CodeValidation,
				Errors:     []string{"Title is required", "Start date must be in the future"},
			},
			want: "api error (status 400): Title is required; Start date must be in the future",
		},
		{
			name: "single message",
			err:  &APIError{StatusCode: 409, Code: CodeMessage, Message: "Already friends"},
			want: "api error (status 409): Already friends",
		},
		{
			name: "status only",
			err:  &APIError{StatusCode: 500, Code: CodeUnknown},
			want: "api error (status 500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	notFound := &APIError{StatusCode: http.StatusNotFound, Code: CodeNotFound}
	assert.ErrorIs(t, notFound, ErrNotFound)

	// Wrapping preserves the sentinel.
	wrapped := fmt.Errorf("loading event: %w", notFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	badRequest := &APIError{StatusCode: http.StatusBadRequest, Code: CodeUnknown}
	assert.False(t, errors.Is(badRequest, ErrNotFound))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "message error wins over fallback",
			err:      &APIError{StatusCode: 401, Code: CodeMessage, Message: "Invalid username or password"},
			fallback: "Login failed. Please try again.",
			want:     "Invalid username or password",
		},
		{
			name: "first validation error wins",
			err: &APIError{
				StatusCode: 400,
				Code:       CodeValidation,
				Errors:     []string{"Title is required", "End date must be after start date"},
			},
			fallback: "Failed to create event",
			want:     "Title is required",
		},
		{
			name:     "unknown shape falls back",
			err:      &APIError{StatusCode: 500, Code: CodeUnknown},
			fallback: "Something went wrong",
			want:     "Something went wrong",
		},
		{
			name:     "non-API error falls back",
			err:      errors.New("dial tcp: connection refused"),
			fallback: "Something went wrong",
			want:     "Something went wrong",
		},
		{
			name:     "wrapped API error still recognized",
			err:      fmt.Errorf("saving: %w", &APIError{StatusCode: 409, Code: CodeMessage, Message: "Already RSVPed"}),
			fallback: "Failed to RSVP",
			want:     "Already RSVPed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err, tt.fallback))
		})
	}
}
