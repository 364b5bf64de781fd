package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
)

// DB is the subset of *pgxpool.Pool used by the services.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TodoService interface {
	// ListTodos returns a page of todos joined with their user and
	// category names.
	//
	// It returns ErrInvalidQuery without touching the database if the
	// sort field or order is not allowed or the page bounds are invalid.
	ListTodos(ctx context.Context, params ListTodosParams) ([]*models.Todo, error)

	// GetTodoByID returns the todo with the given ID or ErrTodoNotFound.
	GetTodoByID(ctx context.Context, id int64) (*models.Todo, error)

	// CreateTodo inserts the supplied fields and returns the generated ID.
	// Foreign keys are not checked here, the database decides.
	CreateTodo(ctx context.Context, fields TodoFields) (int64, error)

	// UpdateTodo changes only the supplied fields and returns the number
	// of affected rows.
	UpdateTodo(ctx context.Context, id int64, fields TodoFields) (int64, error)

	// DeleteTodo removes the todo and returns the number of affected rows.
	// Logs of the todo are kept.
	DeleteTodo(ctx context.Context, id int64) (int64, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, fields UserFields) (int64, error)
	UpdateUser(ctx context.Context, id int64, fields UserFields) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, fields CategoryFields) (int64, error)
	UpdateCategory(ctx context.Context, id int64, fields CategoryFields) (int64, error)
	DeleteCategory(ctx context.Context, id int64) (int64, error)
}

// TodoLogService has no update: logs are append-only.
type TodoLogService interface {
	ListTodoLogs(ctx context.Context) ([]*models.TodoLog, error)
	GetTodoLogByID(ctx context.Context, id int64) (*models.TodoLog, error)
	CreateTodoLog(ctx context.Context, fields TodoLogFields) (int64, error)
	DeleteTodoLog(ctx context.Context, id int64) (int64, error)
}

type TodoDetailService interface {
	ListTodoDetails(ctx context.Context) ([]models.TodoDetail, error)
	GetTodoDetailByID(ctx context.Context, id int64) (models.TodoDetail, error)
}

type ListTodosParams struct {
	Limit     int64
	Offset    int64
	SortField SortField
	SortOrder SortOrder
	Keyword   string
}

// TodoFields holds the columns supplied for a create or update. Unset
// fields are left out of the statement.
type TodoFields struct {
	Title      models.Optional[string]
	Completed  models.Optional[bool]
	UserID     models.Optional[int64]
	CategoryID models.Optional[int64]
}

func (f TodoFields) columns() []column {
	var cols []column
	cols = appendColumn(cols, "title", f.Title)
	cols = appendColumn(cols, "completed", f.Completed)
	cols = appendColumn(cols, "user_id", f.UserID)
	cols = appendColumn(cols, "category_id", f.CategoryID)
	return cols
}

type UserFields struct {
	Username models.Optional[string]
	Email    models.Optional[string]
}

func (f UserFields) columns() []column {
	var cols []column
	cols = appendColumn(cols, "username", f.Username)
	cols = appendColumn(cols, "email", f.Email)
	return cols
}

type CategoryFields struct {
	Name models.Optional[string]
}

func (f CategoryFields) columns() []column {
	return appendColumn(nil, "name", f.Name)
}

type TodoLogFields struct {
	TodoID models.Optional[int64]
	Action models.Optional[string]
}

func (f TodoLogFields) columns() []column {
	var cols []column
	cols = appendColumn(cols, "todo_id", f.TodoID)
	cols = appendColumn(cols, "action", f.Action)
	return cols
}
