package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/mytasks/mytasks-server/internal/api/http/handler"
	"github.com/mytasks/mytasks-server/internal/api/http/middleware"
	"github.com/mytasks/mytasks-server/internal/logger"
	"github.com/mytasks/mytasks-server/internal/model"
)

// Router assembles the HTTP routes and middleware.
type Router struct {
	authService    handler.AuthService
	taskService    handler.TaskService
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
	allowedOrigins []string
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	taskService handler.TaskService,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
	allowedOrigins []string,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
}

// Register builds the handler chain. The /usuario subtree requires a bearer
// token; the /tasks routes operate on the global list without authentication.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)

	root := mux.NewRouter()
	root.Use(logging.Handle)

	root.HandleFunc("/cadastro", authHandler.Cadastro).Methods(http.MethodPost)
	root.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	private := root.PathPrefix("/usuario").Subrouter()
	private.Use(authenticate.Handle)
	private.HandleFunc("/{id}/tasks", taskHandler.ListUserTasks).Methods(http.MethodGet)
	private.HandleFunc("/{id}/task", taskHandler.CreateUserTask).Methods(http.MethodPost)
	private.HandleFunc("/{uid}/task/{tid}", taskHandler.UpdateUserTask).Methods(http.MethodPut)
	private.HandleFunc("/{uid}/task/{tid}", taskHandler.DeleteUserTask).Methods(http.MethodDelete)

	// /tasks/week must register before /tasks/{id} so "week" is not read as
	// an id.
	root.HandleFunc("/tasks/week", taskHandler.GetWeekTasks).Methods(http.MethodGet)
	root.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	root.HandleFunc("/tasks", taskHandler.GetTasks).Methods(http.MethodGet)
	root.HandleFunc("/tasks/{id}", taskHandler.DeleteTask).Methods(http.MethodDelete)
	root.HandleFunc("/tasks/{id}", taskHandler.PatchTask).Methods(http.MethodPatch)

	c := cors.New(cors.Options{
		AllowedOrigins:   r.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(root)
}
