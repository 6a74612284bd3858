package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        NewValidationError("userId is required"),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found error",
			err:        NewNotFoundError("project"),
			wantType:   ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "conflict error",
			err:        NewConflictError("username already exists"),
			wantType:   ErrorTypeConflict,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "store error",
			err:        NewStoreError("PutItem", fmt.Errorf("throttled")),
			wantType:   ErrorTypeStore,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestGetAppError_UnwrapsChain(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewStoreError("Query", cause)
	wrapped := fmt.Errorf("listing tasks: %w", err)

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeStore, appErr.Type)
	assert.ErrorIs(t, wrapped, cause)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("user")))
	assert.True(t, IsValidation(NewValidationError("missing field")))
	assert.True(t, IsConflict(NewConflictError("duplicate")))
	assert.True(t, IsStore(NewStoreError("Scan", fmt.Errorf("boom"))))
	assert.False(t, IsNotFound(fmt.Errorf("plain error")))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := NewStoreError("BatchWrite", fmt.Errorf("partial failure"))
	assert.Contains(t, err.Error(), "STORE")
	assert.Contains(t, err.Error(), "partial failure")
}
