package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard-backend/application/ports"
	"taskboard-backend/domain/entities"
	"taskboard-backend/domain/events"

	"github.com/go-chi/chi/v5"
)

// stubProjectRepo backs handler tests with per-test function fields. A nil
// field means the test does not expect that call.
type stubProjectRepo struct {
	t *testing.T

	createFunc      func(ctx context.Context, name, description, userID string) (*entities.Project, error)
	listFunc        func(ctx context.Context) ([]entities.Project, error)
	getFunc         func(ctx context.Context, id string) (*entities.Project, error)
	updateFunc      func(ctx context.Context, id, name, description string) (*entities.Project, error)
	deleteFunc      func(ctx context.Context, id string) error
	assignFunc      func(ctx context.Context, projectID, userID string) error
	listForUserFunc func(ctx context.Context, username string) ([]entities.ProjectRelation, error)
}

func (s *stubProjectRepo) CreateProject(ctx context.Context, name, description, userID string) (*entities.Project, error) {
	if s.createFunc == nil {
		s.t.Fatal("unexpected CreateProject call")
	}
	return s.createFunc(ctx, name, description, userID)
}

func (s *stubProjectRepo) GetProjects(ctx context.Context) ([]entities.Project, error) {
	if s.listFunc == nil {
		s.t.Fatal("unexpected GetProjects call")
	}
	return s.listFunc(ctx)
}

func (s *stubProjectRepo) GetProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	if s.getFunc == nil {
		s.t.Fatal("unexpected GetProjectByID call")
	}
	return s.getFunc(ctx, id)
}

func (s *stubProjectRepo) UpdateProject(ctx context.Context, id, name, description string) (*entities.Project, error) {
	if s.updateFunc == nil {
		s.t.Fatal("unexpected UpdateProject call")
	}
	return s.updateFunc(ctx, id, name, description)
}

func (s *stubProjectRepo) DeleteProject(ctx context.Context, id string) error {
	if s.deleteFunc == nil {
		s.t.Fatal("unexpected DeleteProject call")
	}
	return s.deleteFunc(ctx, id)
}

func (s *stubProjectRepo) AssignProjectToUser(ctx context.Context, projectID, userID string) error {
	if s.assignFunc == nil {
		s.t.Fatal("unexpected AssignProjectToUser call")
	}
	return s.assignFunc(ctx, projectID, userID)
}

func (s *stubProjectRepo) GetProjectsForUser(ctx context.Context, username string) ([]entities.ProjectRelation, error) {
	if s.listForUserFunc == nil {
		s.t.Fatal("unexpected GetProjectsForUser call")
	}
	return s.listForUserFunc(ctx, username)
}

type stubTaskRepo struct {
	t *testing.T

	createFunc  func(ctx context.Context, projectID string, task ports.NewTask) (*entities.Task, error)
	listFunc    func(ctx context.Context, projectID string) ([]entities.Task, error)
	updateFunc  func(ctx context.Context, projectID, taskID string, update ports.TaskUpdate) (*entities.Task, error)
	deleteFunc  func(ctx context.Context, projectID, taskID string) error
	listAllFunc func(ctx context.Context) ([]entities.Task, error)
	filterFunc  func(ctx context.Context, status string) ([]entities.Task, error)
}

func (s *stubTaskRepo) CreateTask(ctx context.Context, projectID string, task ports.NewTask) (*entities.Task, error) {
	if s.createFunc == nil {
		s.t.Fatal("unexpected CreateTask call")
	}
	return s.createFunc(ctx, projectID, task)
}

func (s *stubTaskRepo) GetTasksForProject(ctx context.Context, projectID string) ([]entities.Task, error) {
	if s.listFunc == nil {
		s.t.Fatal("unexpected GetTasksForProject call")
	}
	return s.listFunc(ctx, projectID)
}

func (s *stubTaskRepo) UpdateTask(ctx context.Context, projectID, taskID string, update ports.TaskUpdate) (*entities.Task, error) {
	if s.updateFunc == nil {
		s.t.Fatal("unexpected UpdateTask call")
	}
	return s.updateFunc(ctx, projectID, taskID, update)
}

func (s *stubTaskRepo) DeleteTask(ctx context.Context, projectID, taskID string) error {
	if s.deleteFunc == nil {
		s.t.Fatal("unexpected DeleteTask call")
	}
	return s.deleteFunc(ctx, projectID, taskID)
}

func (s *stubTaskRepo) GetAllTasks(ctx context.Context) ([]entities.Task, error) {
	if s.listAllFunc == nil {
		s.t.Fatal("unexpected GetAllTasks call")
	}
	return s.listAllFunc(ctx)
}

func (s *stubTaskRepo) FilterTasksByStatus(ctx context.Context, status string) ([]entities.Task, error) {
	if s.filterFunc == nil {
		s.t.Fatal("unexpected FilterTasksByStatus call")
	}
	return s.filterFunc(ctx, status)
}

type stubUserRepo struct {
	t *testing.T

	createFunc        func(ctx context.Context, username, name, role string) (*entities.User, error)
	listFunc          func(ctx context.Context) ([]entities.User, error)
	deleteFunc        func(ctx context.Context, username string) error
	getFunc           func(ctx context.Context, username string) (*entities.User, error)
	notificationsFunc func(ctx context.Context, username string) ([]entities.Notification, error)
}

func (s *stubUserRepo) CreateUser(ctx context.Context, username, name, role string) (*entities.User, error) {
	if s.createFunc == nil {
		s.t.Fatal("unexpected CreateUser call")
	}
	return s.createFunc(ctx, username, name, role)
}

func (s *stubUserRepo) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	if s.listFunc == nil {
		s.t.Fatal("unexpected GetAllUsers call")
	}
	return s.listFunc(ctx)
}

func (s *stubUserRepo) DeleteUser(ctx context.Context, username string) error {
	if s.deleteFunc == nil {
		s.t.Fatal("unexpected DeleteUser call")
	}
	return s.deleteFunc(ctx, username)
}

func (s *stubUserRepo) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	if s.getFunc == nil {
		s.t.Fatal("unexpected GetUserByUsername call")
	}
	return s.getFunc(ctx, username)
}

func (s *stubUserRepo) GetNotificationsForUser(ctx context.Context, username string) ([]entities.Notification, error) {
	if s.notificationsFunc == nil {
		s.t.Fatal("unexpected GetNotificationsForUser call")
	}
	return s.notificationsFunc(ctx, username)
}

// stubPublisher records every published event. Err, when set, is returned
// from Publish to simulate bus failures.
type stubPublisher struct {
	published []events.DomainEvent
	err       error
}

func (s *stubPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	s.published = append(s.published, event)
	return s.err
}

// withURLParams attaches chi route parameters to a request so handlers can be
// exercised without mounting a full router.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func doRequest(handler http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler(rec, r)
	return rec
}
