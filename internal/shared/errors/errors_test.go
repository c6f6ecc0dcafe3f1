package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/arena-admin/sdk/platform"
)

func TestFromPlatform_StatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		wantType ErrorType
		wantCode int
	}{
		{http.StatusBadRequest, ErrorTypeValidation, http.StatusBadRequest},
		{http.StatusUnauthorized, ErrorTypeUnauthorized, http.StatusUnauthorized},
		{http.StatusForbidden, ErrorTypeForbidden, http.StatusForbidden},
		{http.StatusNotFound, ErrorTypeNotFound, http.StatusNotFound},
		{http.StatusConflict, ErrorTypeConflict, http.StatusConflict},
		{http.StatusTooManyRequests, ErrorTypeRateLimited, http.StatusTooManyRequests},
		{http.StatusInternalServerError, ErrorTypeUpstream, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			apiErr := &platform.APIError{StatusCode: tt.status, Message: "boom"}
			err := FromPlatform(fmt.Errorf("delete language: %w", apiErr), "failed to delete language")

			appErr := GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, "boom", appErr.Details)

			var unwrapped *platform.APIError
			assert.True(t, errors.As(err, &unwrapped))
		})
	}
}

func TestFromPlatform_TransportFailure(t *testing.T) {
	err := FromPlatform(errors.New("dial tcp: connection refused"), "failed to list users")

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeUpstream, appErr.Type)
	assert.Equal(t, "failed to list users", appErr.Message)
}

func TestFromPlatform_PassThrough(t *testing.T) {
	assert.Nil(t, FromPlatform(nil, "x"))

	orig := NewValidationError("name is required")
	assert.Same(t, orig, FromPlatform(orig, "x"))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsConflictError(NewConflictError("in use")))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrap: %w", NewNotFoundError("missing"))))
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.Equal(t, "validation_error: bad (field x)", NewValidationError("bad", "field x").Error())
}
