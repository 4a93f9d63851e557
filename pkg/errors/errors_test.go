package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("review", "r-123")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Error(), "review with id r-123 not found")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("rating must be between 1 and 5")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStoreUnavailable_WrapsBothSentinelAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := StoreUnavailable(cause)

	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestStoreWrite_WrapsBothSentinelAndCause(t *testing.T) {
	cause := errors.New("store write returned status 403")
	err := StoreWrite(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, ErrStoreWrite)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", NotFound("review", "x"), http.StatusNotFound},
		{"wrapped app error", fmt.Errorf("outer: %w", StoreUnavailable(errors.New("x"))), http.StatusServiceUnavailable},
		{"bare not found", ErrNotFound, http.StatusNotFound},
		{"bare invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"bare store unavailable", ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"unknown error", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("inner")
	err := Wrap(cause, "loading reviews")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "loading reviews: inner", err.Error())
}
