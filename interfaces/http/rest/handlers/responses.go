package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "taskboard-backend/pkg/errors"

	"go.uber.org/zap"
)

// errorResponse is the wire shape for all error replies
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// messageResponse is the wire shape for delete/assign confirmations
type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, errorResponse{Message: message})
}

// respondAppError maps an operation error onto the status code and
// {message, error?} body the API promises. Store errors carry the underlying
// error text; unknown errors become a plain 500.
func respondAppError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		logger.Error("Unhandled error", zap.Error(err))
		respondJSON(w, logger, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
		return
	}

	body := errorResponse{Message: appErr.Message}
	if appErr.Type == apperrors.ErrorTypeStore && appErr.Cause != nil {
		body.Error = appErr.Cause.Error()
	}
	respondJSON(w, logger, appErr.HTTPStatus, body)
}
