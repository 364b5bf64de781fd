package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-catalog/internal/services"
)

type Handler interface {
	HandleRequestID(c *gin.Context)
	HandleAccessLog(c *gin.Context)
	HandleHealth(c *gin.Context)
	HandleNoRoute(c *gin.Context)
	HandleRecovery(c *gin.Context, recovered any)

	HandleListTodos(c *gin.Context)
	HandleGetTodo(c *gin.Context)
	HandleCreateTodo(c *gin.Context)
	HandleUpdateTodo(c *gin.Context)
	HandleDeleteTodo(c *gin.Context)

	HandleListUsers(c *gin.Context)
	HandleGetUser(c *gin.Context)
	HandleCreateUser(c *gin.Context)
	HandleUpdateUser(c *gin.Context)
	HandleDeleteUser(c *gin.Context)

	HandleListCategories(c *gin.Context)
	HandleGetCategory(c *gin.Context)
	HandleCreateCategory(c *gin.Context)
	HandleUpdateCategory(c *gin.Context)
	HandleDeleteCategory(c *gin.Context)

	HandleListTodoLogs(c *gin.Context)
	HandleGetTodoLog(c *gin.Context)
	HandleCreateTodoLog(c *gin.Context)
	HandleDeleteTodoLog(c *gin.Context)

	HandleListTodoDetails(c *gin.Context)
	HandleGetTodoDetail(c *gin.Context)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Services struct {
	Todos       services.TodoService
	Users       services.UserService
	Categories  services.CategoryService
	TodoLogs    services.TodoLogService
	TodoDetails services.TodoDetailService
}

type handlerImpl struct {
	logger      zerolog.Logger
	pinger      Pinger
	todos       services.TodoService
	users       services.UserService
	categories  services.CategoryService
	todoLogs    services.TodoLogService
	todoDetails services.TodoDetailService
}

func New(
	logger zerolog.Logger,
	pinger Pinger,
	svc Services,
) Handler {
	return &handlerImpl{
		logger:      logger,
		pinger:      pinger,
		todos:       svc.Todos,
		users:       svc.Users,
		categories:  svc.Categories,
		todoLogs:    svc.TodoLogs,
		todoDetails: svc.TodoDetails,
	}
}

// Register mounts every resource route on router.
func Register(router gin.IRouter, h Handler) {
	router.GET("/health", h.HandleHealth)

	todos := router.Group("/todos")
	todos.GET("", h.HandleListTodos)
	todos.GET("/:id", h.HandleGetTodo)
	todos.POST("", h.HandleCreateTodo)
	todos.PUT("/:id", h.HandleUpdateTodo)
	todos.DELETE("/:id", h.HandleDeleteTodo)

	users := router.Group("/users")
	users.GET("", h.HandleListUsers)
	users.GET("/:id", h.HandleGetUser)
	users.POST("", h.HandleCreateUser)
	users.PUT("/:id", h.HandleUpdateUser)
	users.DELETE("/:id", h.HandleDeleteUser)

	categories := router.Group("/categories")
	categories.GET("", h.HandleListCategories)
	categories.GET("/:id", h.HandleGetCategory)
	categories.POST("", h.HandleCreateCategory)
	categories.PUT("/:id", h.HandleUpdateCategory)
	categories.DELETE("/:id", h.HandleDeleteCategory)

	todoLogs := router.Group("/todo-logs")
	todoLogs.GET("", h.HandleListTodoLogs)
	todoLogs.GET("/:id", h.HandleGetTodoLog)
	todoLogs.POST("", h.HandleCreateTodoLog)
	todoLogs.DELETE("/:id", h.HandleDeleteTodoLog)

	todoDetails := router.Group("/todo-details")
	todoDetails.GET("", h.HandleListTodoDetails)
	todoDetails.GET("/:id", h.HandleGetTodoDetail)
}
