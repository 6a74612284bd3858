package handlers

import (
	"encoding/json"
	"net/http"

	"taskboard-backend/application/ports"
	"taskboard-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users ports.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.Username, req.Name, req.Role)
	if err != nil {
		h.logger.Error("Failed to create user", zap.String("username", req.Username), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, user)
}

// GetAllUsers handles GET /users
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAllUsers(r.Context())
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, users)
}

// DeleteUser handles DELETE /users/{username}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.users.DeleteUser(r.Context(), username); err != nil {
		h.logger.Error("Failed to delete user", zap.String("username", username), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

// Login handles POST /login. There is no credential check; login is a
// presence lookup by username.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}

// GetNotificationsForUser handles GET /users/{username}/notifications
func (h *UserHandler) GetNotificationsForUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	notifications, err := h.users.GetNotificationsForUser(r.Context(), username)
	if err != nil {
		h.logger.Error("Failed to list notifications", zap.String("username", username), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, notifications)
}
