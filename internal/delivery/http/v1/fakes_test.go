package v1

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
	"github.com/adanyl0v/go-todo-catalog/internal/services"
)

type fakeTodoService struct {
	todos    []*models.Todo
	todo     *models.Todo
	id       int64
	affected int64
	err      error

	calls      int
	lastParams services.ListTodosParams
	lastID     int64
	lastFields services.TodoFields
}

func (s *fakeTodoService) ListTodos(_ context.Context, params services.ListTodosParams) ([]*models.Todo, error) {
	s.calls++
	s.lastParams = params
	return s.todos, s.err
}

func (s *fakeTodoService) GetTodoByID(_ context.Context, id int64) (*models.Todo, error) {
	s.calls++
	s.lastID = id
	return s.todo, s.err
}

func (s *fakeTodoService) CreateTodo(_ context.Context, fields services.TodoFields) (int64, error) {
	s.calls++
	s.lastFields = fields
	return s.id, s.err
}

func (s *fakeTodoService) UpdateTodo(_ context.Context, id int64, fields services.TodoFields) (int64, error) {
	s.calls++
	s.lastID = id
	s.lastFields = fields
	return s.affected, s.err
}

func (s *fakeTodoService) DeleteTodo(_ context.Context, id int64) (int64, error) {
	s.calls++
	s.lastID = id
	return s.affected, s.err
}

type fakeUserService struct {
	users    []*models.User
	user     *models.User
	id       int64
	affected int64
	err      error

	lastFields services.UserFields
}

func (s *fakeUserService) ListUsers(context.Context) ([]*models.User, error) {
	return s.users, s.err
}

func (s *fakeUserService) GetUserByID(context.Context, int64) (*models.User, error) {
	return s.user, s.err
}

func (s *fakeUserService) CreateUser(_ context.Context, fields services.UserFields) (int64, error) {
	s.lastFields = fields
	return s.id, s.err
}

func (s *fakeUserService) UpdateUser(_ context.Context, _ int64, fields services.UserFields) (int64, error) {
	s.lastFields = fields
	return s.affected, s.err
}

func (s *fakeUserService) DeleteUser(context.Context, int64) (int64, error) {
	return s.affected, s.err
}

type fakeCategoryService struct {
	categories []*models.Category
	category   *models.Category
	id         int64
	affected   int64
	err        error
}

func (s *fakeCategoryService) ListCategories(context.Context) ([]*models.Category, error) {
	return s.categories, s.err
}

func (s *fakeCategoryService) GetCategoryByID(context.Context, int64) (*models.Category, error) {
	return s.category, s.err
}

func (s *fakeCategoryService) CreateCategory(context.Context, services.CategoryFields) (int64, error) {
	return s.id, s.err
}

func (s *fakeCategoryService) UpdateCategory(context.Context, int64, services.CategoryFields) (int64, error) {
	return s.affected, s.err
}

func (s *fakeCategoryService) DeleteCategory(context.Context, int64) (int64, error) {
	return s.affected, s.err
}

type fakeTodoLogService struct {
	logs     []*models.TodoLog
	log      *models.TodoLog
	id       int64
	affected int64
	err      error

	lastFields services.TodoLogFields
}

func (s *fakeTodoLogService) ListTodoLogs(context.Context) ([]*models.TodoLog, error) {
	return s.logs, s.err
}

func (s *fakeTodoLogService) GetTodoLogByID(context.Context, int64) (*models.TodoLog, error) {
	return s.log, s.err
}

func (s *fakeTodoLogService) CreateTodoLog(_ context.Context, fields services.TodoLogFields) (int64, error) {
	s.lastFields = fields
	return s.id, s.err
}

func (s *fakeTodoLogService) DeleteTodoLog(context.Context, int64) (int64, error) {
	return s.affected, s.err
}

type fakeTodoDetailService struct {
	details []models.TodoDetail
	detail  models.TodoDetail
	err     error
}

func (s *fakeTodoDetailService) ListTodoDetails(context.Context) ([]models.TodoDetail, error) {
	return s.details, s.err
}

func (s *fakeTodoDetailService) GetTodoDetailByID(context.Context, int64) (models.TodoDetail, error) {
	return s.detail, s.err
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

// emptyDB answers every query with no rows and records the arguments.
type emptyDB struct {
	args [][]any
}

func (db *emptyDB) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	db.args = append(db.args, args)
	return pgconn.NewCommandTag("UPDATE 0"), nil
}

func (db *emptyDB) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	db.args = append(db.args, args)
	return new(emptyRows), nil
}

func (db *emptyDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	db.args = append(db.args, args)
	return emptyRow{}
}

type emptyRow struct{}

func (emptyRow) Scan(...any) error { return pgx.ErrNoRows }

type emptyRows struct{}

func (*emptyRows) Close()                                       {}
func (*emptyRows) Err() error                                   { return nil }
func (*emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT 0") }
func (*emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (*emptyRows) Next() bool                                   { return false }
func (*emptyRows) Scan(...any) error                            { return pgx.ErrNoRows }
func (*emptyRows) Values() ([]any, error)                       { return nil, nil }
func (*emptyRows) RawValues() [][]byte                          { return nil }
func (*emptyRows) Conn() *pgx.Conn                              { return nil }
