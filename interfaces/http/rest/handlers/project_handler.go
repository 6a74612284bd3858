package handlers

import (
	"encoding/json"
	"net/http"

	"taskboard-backend/application/ports"
	"taskboard-backend/domain/events"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projects  ports.ProjectRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects ports.ProjectRepository, publisher ports.EventPublisher, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects:  projects,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// UpdateProjectRequest represents the request body for updating a project
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AssignProjectRequest represents the request body for assigning a project
type AssignProjectRequest struct {
	UserID string `json:"userId"`
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	project, err := h.projects.CreateProject(r.Context(), req.Name, req.Description, req.UserID)
	if err != nil {
		h.logger.Error("Failed to create project", zap.String("userID", req.UserID), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	h.publish(r, events.NewProjectCreated(project.ID, req.UserID, project.Name))
	respondJSON(w, h.logger, http.StatusCreated, project)
}

// GetProjects handles GET /projects
func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.GetProjects(r.Context())
	if err != nil {
		h.logger.Error("Failed to list projects", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProjectByID handles GET /projects/{projectId}
func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectId")

	project, err := h.projects.GetProjectByID(r.Context(), id)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}

// UpdateProject handles PUT /projects/{projectId}
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectId")

	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	project, err := h.projects.UpdateProject(r.Context(), id, req.Name, req.Description)
	if err != nil {
		h.logger.Error("Failed to update project", zap.String("projectID", id), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/{projectId}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectId")

	if err := h.projects.DeleteProject(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete project", zap.String("projectID", id), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, messageResponse{Message: "project deleted successfully"})
}

// AssignProjectToUser handles POST /projects/{projectId}/assign
func (h *ProjectHandler) AssignProjectToUser(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	var req AssignProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		respondError(w, h.logger, http.StatusBadRequest, "userId is required")
		return
	}

	if err := h.projects.AssignProjectToUser(r.Context(), projectID, req.UserID); err != nil {
		h.logger.Error("Failed to assign project",
			zap.String("projectID", projectID),
			zap.String("userID", req.UserID),
			zap.Error(err),
		)
		respondAppError(w, h.logger, err)
		return
	}

	h.publish(r, events.NewProjectAssigned(projectID, req.UserID))
	respondJSON(w, h.logger, http.StatusOK, messageResponse{Message: "project assigned successfully"})
}

// GetProjectsForUser handles GET /users/{username}/projects
func (h *ProjectHandler) GetProjectsForUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	relations, err := h.projects.GetProjectsForUser(r.Context(), username)
	if err != nil {
		h.logger.Error("Failed to list user projects", zap.String("username", username), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, relations)
}

// publish emits a domain event best effort; failures are logged, never
// surfaced to the caller.
func (h *ProjectHandler) publish(r *http.Request, event events.DomainEvent) {
	if err := h.publisher.Publish(r.Context(), event); err != nil {
		h.logger.Warn("Failed to publish event",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
	}
}
