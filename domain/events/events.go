package events

import "time"

// Source identifies this service on the event bus.
const Source = "taskboard.backend"

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// ProjectCreated is raised when a new project and its owner relation are written
type ProjectCreated struct {
	BaseEvent
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
}

// NewProjectCreated creates a ProjectCreated event
func NewProjectCreated(projectID, userID, name string) ProjectCreated {
	return ProjectCreated{
		BaseEvent: BaseEvent{
			AggregateID: projectID,
			EventType:   "project.created",
			Timestamp:   time.Now(),
		},
		ProjectID: projectID,
		UserID:    userID,
		Name:      name,
	}
}

// ProjectAssigned is raised when a project is assigned to an additional user
type ProjectAssigned struct {
	BaseEvent
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
}

// NewProjectAssigned creates a ProjectAssigned event
func NewProjectAssigned(projectID, userID string) ProjectAssigned {
	return ProjectAssigned{
		BaseEvent: BaseEvent{
			AggregateID: projectID,
			EventType:   "project.assigned",
			Timestamp:   time.Now(),
		},
		ProjectID: projectID,
		UserID:    userID,
	}
}

// TaskCreated is raised when a task and its assignee relation are written
type TaskCreated struct {
	BaseEvent
	TaskID       string `json:"task_id"`
	ProjectID    string `json:"project_id"`
	AssignedUser string `json:"assigned_user"`
	Title        string `json:"title"`
}

// NewTaskCreated creates a TaskCreated event
func NewTaskCreated(taskID, projectID, assignedUser, title string) TaskCreated {
	return TaskCreated{
		BaseEvent: BaseEvent{
			AggregateID: taskID,
			EventType:   "task.created",
			Timestamp:   time.Now(),
		},
		TaskID:       taskID,
		ProjectID:    projectID,
		AssignedUser: assignedUser,
		Title:        title,
	}
}

// TaskUpdated is raised after a full task replace
type TaskUpdated struct {
	BaseEvent
	TaskID    string `json:"task_id"`
	ProjectID string `json:"project_id"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
}

// NewTaskUpdated creates a TaskUpdated event
func NewTaskUpdated(taskID, projectID, status, priority string) TaskUpdated {
	return TaskUpdated{
		BaseEvent: BaseEvent{
			AggregateID: taskID,
			EventType:   "task.updated",
			Timestamp:   time.Now(),
		},
		TaskID:    taskID,
		ProjectID: projectID,
		Status:    status,
		Priority:  priority,
	}
}
