package handlers

import (
	"encoding/json"
	"net/http"

	"taskboard-backend/application/ports"
	"taskboard-backend/domain/events"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks     ports.TaskRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks ports.TaskRepository, publisher ports.EventPublisher, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:     tasks,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Deadline    *string `json:"deadline"`
}

// UpdateTaskRequest represents the full replacement body for a task. Every
// field must be resupplied; omitted fields are cleared.
type UpdateTaskRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	Deadline     *string `json:"deadline"`
	AssignedUser string  `json:"assignedUser"`
	CreatedAt    string  `json:"createdAt"`
}

// CreateTask handles POST /projects/{projectId}/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), projectID, ports.NewTask{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.logger.Error("Failed to create task", zap.String("projectID", projectID), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	h.publish(r, events.NewTaskCreated(task.ID, projectID, task.AssignedUser, task.Title))
	respondJSON(w, h.logger, http.StatusCreated, task)
}

// GetTasksForProject handles GET /projects/{projectId}/tasks
func (h *TaskHandler) GetTasksForProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	tasks, err := h.tasks.GetTasksForProject(r.Context(), projectID)
	if err != nil {
		h.logger.Error("Failed to list tasks", zap.String("projectID", projectID), zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, tasks)
}

// UpdateTask handles PUT /projects/{projectId}/tasks/{taskId}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	taskID := chi.URLParam(r, "taskId")

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := h.tasks.UpdateTask(r.Context(), projectID, taskID, ports.TaskUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		Deadline:     req.Deadline,
		AssignedUser: req.AssignedUser,
		CreatedAt:    req.CreatedAt,
	})
	if err != nil {
		h.logger.Error("Failed to update task",
			zap.String("projectID", projectID),
			zap.String("taskID", taskID),
			zap.Error(err),
		)
		respondAppError(w, h.logger, err)
		return
	}

	h.publish(r, events.NewTaskUpdated(taskID, projectID, task.Status, task.Priority))
	respondJSON(w, h.logger, http.StatusOK, task)
}

// DeleteTask handles DELETE /projects/{projectId}/tasks/{taskId}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	taskID := chi.URLParam(r, "taskId")

	if err := h.tasks.DeleteTask(r.Context(), projectID, taskID); err != nil {
		h.logger.Error("Failed to delete task",
			zap.String("projectID", projectID),
			zap.String("taskID", taskID),
			zap.Error(err),
		)
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, messageResponse{Message: "task deleted successfully"})
}

// GetAllTasks handles GET /tasks
func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.GetAllTasks(r.Context())
	if err != nil {
		h.logger.Error("Failed to list all tasks", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, tasks)
}

// FilterTasksByStatus handles GET /tasks/filter?status=
func (h *TaskHandler) FilterTasksByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	tasks, err := h.tasks.FilterTasksByStatus(r.Context(), status)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, tasks)
}

func (h *TaskHandler) publish(r *http.Request, event events.DomainEvent) {
	if err := h.publisher.Publish(r.Context(), event); err != nil {
		h.logger.Warn("Failed to publish event",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
	}
}
