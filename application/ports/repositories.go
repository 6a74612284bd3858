package ports

import (
	"context"

	"taskboard-backend/domain/entities"
	"taskboard-backend/domain/events"
)

// NewTask carries the caller-supplied fields for task creation. Status and
// priority fall back to the entity defaults when empty.
type NewTask struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Deadline    *string
}

// TaskUpdate carries the full replacement state for a task. Every field is
// written as supplied; omitted fields are cleared. The index keys are
// recomputed from Status and Priority.
type TaskUpdate struct {
	Title        string
	Description  string
	Status       string
	Priority     string
	Deadline     *string
	AssignedUser string
	CreatedAt    string
}

// ProjectRepository exposes the project operations of the task store
type ProjectRepository interface {
	CreateProject(ctx context.Context, name, description, userID string) (*entities.Project, error)
	GetProjects(ctx context.Context) ([]entities.Project, error)
	GetProjectByID(ctx context.Context, id string) (*entities.Project, error)
	UpdateProject(ctx context.Context, id, name, description string) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
	AssignProjectToUser(ctx context.Context, projectID, userID string) error
	GetProjectsForUser(ctx context.Context, username string) ([]entities.ProjectRelation, error)
}

// TaskRepository exposes the task operations of the task store
type TaskRepository interface {
	CreateTask(ctx context.Context, projectID string, task NewTask) (*entities.Task, error)
	GetTasksForProject(ctx context.Context, projectID string) ([]entities.Task, error)
	UpdateTask(ctx context.Context, projectID, taskID string, update TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error
	GetAllTasks(ctx context.Context) ([]entities.Task, error)
	FilterTasksByStatus(ctx context.Context, status string) ([]entities.Task, error)
}

// UserRepository exposes the user and notification operations of the task store
type UserRepository interface {
	CreateUser(ctx context.Context, username, name, role string) (*entities.User, error)
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, username string) error
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	GetNotificationsForUser(ctx context.Context, username string) ([]entities.Notification, error)
}

// EventPublisher publishes domain events for downstream consumers, such as the
// notification writer
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}
