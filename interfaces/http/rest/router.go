package rest

import (
	"net/http"

	"taskboard-backend/application/ports"
	"taskboard-backend/interfaces/http/rest/handlers"
	"taskboard-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	projects  ports.ProjectRepository
	tasks     ports.TaskRepository
	users     ports.UserRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	users ports.UserRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *Router {
	return &Router{
		projects:  projects,
		tasks:     tasks,
		users:     users,
		publisher: publisher,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	projectHandler := handlers.NewProjectHandler(rt.projects, rt.publisher, rt.logger)
	taskHandler := handlers.NewTaskHandler(rt.tasks, rt.publisher, rt.logger)
	userHandler := handlers.NewUserHandler(rt.users, rt.logger)

	// Authentication (presence lookup only)
	router.Post("/login", userHandler.Login)

	// Task endpoints spanning projects
	router.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetAllTasks)
		r.Get("/filter", taskHandler.FilterTasksByStatus)
	})

	// Project endpoints
	router.Route("/projects", func(r chi.Router) {
		r.Post("/", projectHandler.CreateProject)
		r.Get("/", projectHandler.GetProjects)
		r.Route("/{projectId}", func(r chi.Router) {
			r.Get("/", projectHandler.GetProjectByID)
			r.Put("/", projectHandler.UpdateProject)
			r.Delete("/", projectHandler.DeleteProject)
			r.Post("/assign", projectHandler.AssignProjectToUser)
			r.Post("/tasks", taskHandler.CreateTask)
			r.Get("/tasks", taskHandler.GetTasksForProject)
			r.Put("/tasks/{taskId}", taskHandler.UpdateTask)
			r.Delete("/tasks/{taskId}", taskHandler.DeleteTask)
		})
	})

	// User endpoints
	router.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.GetAllUsers)
		r.Delete("/{username}", userHandler.DeleteUser)
		r.Get("/{username}/projects", projectHandler.GetProjectsForUser)
		r.Get("/{username}/notifications", userHandler.GetNotificationsForUser)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
