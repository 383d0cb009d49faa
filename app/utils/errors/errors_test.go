package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeSessionNotFound, "session not found")
	assert.Equal(t, "SESSION_NOT_FOUND: session not found", err.Error())

	wrapped := Wrap(ErrCodeStoreError, "session store operation failed", errors.New("connection refused"))
	assert.Equal(t, "STORE_ERROR: session store operation failed (caused by: connection refused)", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError(cause)

	assert.ErrorIs(t, err, cause)
}

func TestAppError_Builders(t *testing.T) {
	err := New(ErrCodeBadRequest, "bad request").
		WithDetails("missing field").
		WithCause(errors.New("underlying"))

	assert.Equal(t, "missing field", err.Details)
	assert.NotNil(t, err.Cause)

	formatted := Newf(ErrCodeNotFound, "%s not found", "profile")
	assert.Equal(t, "profile not found", formatted.Message)
}

func TestGetHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want int
	}{
		{name: "unauthorized", code: ErrCodeUnauthorized, want: http.StatusUnauthorized},
		{name: "invalid token", code: ErrCodeInvalidToken, want: http.StatusUnauthorized},
		{name: "session not found", code: ErrCodeSessionNotFound, want: http.StatusUnauthorized},
		{name: "profile not found", code: ErrCodeProfileNotFound, want: http.StatusNotFound},
		{name: "validation failed", code: ErrCodeValidationFailed, want: http.StatusBadRequest},
		{name: "query failed", code: ErrCodeQueryFailed, want: http.StatusInternalServerError},
		{name: "decode failed", code: ErrCodeDecodeFailed, want: http.StatusInternalServerError},
		{name: "store error", code: ErrCodeStoreError, want: http.StatusInternalServerError},
		{name: "rate limit", code: ErrCodeRateLimitExceeded, want: http.StatusTooManyRequests},
		{name: "service unavailable", code: ErrCodeServiceUnavailable, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatusCode(New(tt.code, "message")))
		})
	}
}

func TestGetHTTPStatusCode_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeProfileNotFound, "profile not found")

	got, ok := AsAppError(appErr)
	require.True(t, ok)
	assert.Equal(t, ErrCodeProfileNotFound, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)

	assert.True(t, IsAppError(appErr))
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeQueryFailed, GetErrorCode(ErrQueryFailed))
	assert.Equal(t, ErrCodeInternalError, GetErrorCode(errors.New("plain")))
}
