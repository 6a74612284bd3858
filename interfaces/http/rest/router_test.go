package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskboard-backend/application/ports"
	"taskboard-backend/domain/entities"
	"taskboard-backend/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedProjectRepo struct{}

func (fixedProjectRepo) CreateProject(ctx context.Context, name, description, userID string) (*entities.Project, error) {
	return &entities.Project{ID: "p1", Name: name}, nil
}
func (fixedProjectRepo) GetProjects(ctx context.Context) ([]entities.Project, error) {
	return []entities.Project{{ID: "p1"}}, nil
}
func (fixedProjectRepo) GetProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	return &entities.Project{ID: id}, nil
}
func (fixedProjectRepo) UpdateProject(ctx context.Context, id, name, description string) (*entities.Project, error) {
	return &entities.Project{ID: id, Name: name}, nil
}
func (fixedProjectRepo) DeleteProject(ctx context.Context, id string) error { return nil }
func (fixedProjectRepo) AssignProjectToUser(ctx context.Context, projectID, userID string) error {
	return nil
}
func (fixedProjectRepo) GetProjectsForUser(ctx context.Context, username string) ([]entities.ProjectRelation, error) {
	return []entities.ProjectRelation{}, nil
}

type fixedTaskRepo struct{}

func (fixedTaskRepo) CreateTask(ctx context.Context, projectID string, task ports.NewTask) (*entities.Task, error) {
	return &entities.Task{ID: "t1", Title: task.Title}, nil
}
func (fixedTaskRepo) GetTasksForProject(ctx context.Context, projectID string) ([]entities.Task, error) {
	return []entities.Task{}, nil
}
func (fixedTaskRepo) UpdateTask(ctx context.Context, projectID, taskID string, update ports.TaskUpdate) (*entities.Task, error) {
	return &entities.Task{ID: taskID}, nil
}
func (fixedTaskRepo) DeleteTask(ctx context.Context, projectID, taskID string) error { return nil }
func (fixedTaskRepo) GetAllTasks(ctx context.Context) ([]entities.Task, error) {
	return []entities.Task{}, nil
}
func (fixedTaskRepo) FilterTasksByStatus(ctx context.Context, status string) ([]entities.Task, error) {
	return []entities.Task{}, nil
}

type fixedUserRepo struct{}

func (fixedUserRepo) CreateUser(ctx context.Context, username, name, role string) (*entities.User, error) {
	return &entities.User{Username: username}, nil
}
func (fixedUserRepo) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	return []entities.User{}, nil
}
func (fixedUserRepo) DeleteUser(ctx context.Context, username string) error { return nil }
func (fixedUserRepo) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return &entities.User{Username: username}, nil
}
func (fixedUserRepo) GetNotificationsForUser(ctx context.Context, username string) ([]entities.Notification, error) {
	return []entities.Notification{}, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event events.DomainEvent) error { return nil }

func newTestHandler() http.Handler {
	router := NewRouter(fixedProjectRepo{}, fixedTaskRepo{}, fixedUserRepo{}, noopPublisher{}, zap.NewNop())
	return router.Setup()
}

func TestRouter_Routes(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"ready", http.MethodGet, "/ready", "", http.StatusOK},
		{"login", http.MethodPost, "/login", `{"username":"daniel"}`, http.StatusOK},
		{"create project", http.MethodPost, "/projects", `{"name":"n","userId":"u"}`, http.StatusCreated},
		{"list projects", http.MethodGet, "/projects", "", http.StatusOK},
		{"get project", http.MethodGet, "/projects/p1", "", http.StatusOK},
		{"update project", http.MethodPut, "/projects/p1", `{"name":"n"}`, http.StatusOK},
		{"delete project", http.MethodDelete, "/projects/p1", "", http.StatusOK},
		{"assign project", http.MethodPost, "/projects/p1/assign", `{"userId":"maria"}`, http.StatusOK},
		{"create task", http.MethodPost, "/projects/p1/tasks", `{"title":"t"}`, http.StatusCreated},
		{"list project tasks", http.MethodGet, "/projects/p1/tasks", "", http.StatusOK},
		{"update task", http.MethodPut, "/projects/p1/tasks/t1", `{"title":"t"}`, http.StatusOK},
		{"delete task", http.MethodDelete, "/projects/p1/tasks/t1", "", http.StatusOK},
		{"list all tasks", http.MethodGet, "/tasks", "", http.StatusOK},
		{"filter tasks", http.MethodGet, "/tasks/filter?status=done", "", http.StatusOK},
		{"create user", http.MethodPost, "/users", `{"username":"u","name":"n","role":"admin"}`, http.StatusCreated},
		{"list users", http.MethodGet, "/users", "", http.StatusOK},
		{"delete user", http.MethodDelete, "/users/daniel", "", http.StatusOK},
		{"user projects", http.MethodGet, "/users/daniel/projects", "", http.StatusOK},
		{"user notifications", http.MethodGet, "/users/daniel/notifications", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, "%s %s", tt.method, tt.path)
		})
	}
}

func TestRouter_HealthBody(t *testing.T) {
	handler := newTestHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
