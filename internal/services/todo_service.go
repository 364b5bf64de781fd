package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
)

type todoServiceImpl struct {
	logger zerolog.Logger
	db     DB
}

func NewTodoService(
	logger zerolog.Logger,
	db DB,
) TodoService {
	return &todoServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *todoServiceImpl) ListTodos(ctx context.Context, params ListTodosParams) ([]*models.Todo, error) {
	query, args, err := buildListTodosQuery(params)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("sort_field", string(params.SortField)).
			Str("sort_order", string(params.SortOrder)).
			Int64("limit", params.Limit).
			Int64("offset", params.Offset).
			Msg("rejected todo list query")
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select todos")
		return nil, classifyError(err)
	}
	defer rows.Close()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		todo := new(models.Todo)
		err = scanTodo(rows, todo)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan todo")
			return nil, classifyError(err)
		}
		todos = append(todos, todo)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int("count", len(todos)).
		Str("keyword", params.Keyword).
		Msg("selected todos")

	return todos, nil
}

func (s *todoServiceImpl) GetTodoByID(ctx context.Context, id int64) (*models.Todo, error) {
	const selectTodoByIDQuery = selectTodosQuery + `WHERE todos.id = $1`

	todo := new(models.Todo)
	err := scanTodo(s.db.QueryRow(ctx, selectTodoByIDQuery, id), todo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().
				Int64("todo_id", id).
				Msg("todo not found")
			return nil, ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to select todo by id")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int64("todo_id", id).
		Msg("selected todo by id")

	return todo, nil
}

func (s *todoServiceImpl) CreateTodo(ctx context.Context, fields TodoFields) (int64, error) {
	query, args := buildInsertQuery("todos", fields.columns())

	var todoID int64
	err := s.db.QueryRow(ctx, query, args...).Scan(&todoID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert todo")
		return 0, classifyError(err)
	}
	s.logger.Info().
		Int64("todo_id", todoID).
		Msg("created todo")

	return todoID, nil
}

func (s *todoServiceImpl) UpdateTodo(ctx context.Context, id int64, fields TodoFields) (int64, error) {
	query, args, err := buildUpdateQuery("todos", id, fields.columns())
	if err != nil {
		return 0, err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to update todo")
		return 0, classifyError(err)
	}

	affected := tag.RowsAffected()
	if affected == 0 {
		s.logger.Debug().
			Int64("todo_id", id).
			Msg("no todo to update")
		return 0, nil
	}
	s.logger.Info().
		Int64("todo_id", id).
		Msg("updated todo")

	return affected, nil
}

func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id int64) (int64, error) {
	const deleteTodoQuery = `DELETE FROM todos WHERE id = $1`

	tag, err := s.db.Exec(ctx, deleteTodoQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to delete todo")
		return 0, classifyError(err)
	}

	affected := tag.RowsAffected()
	if affected == 0 {
		s.logger.Debug().
			Int64("todo_id", id).
			Msg("no todo to delete")
		return 0, nil
	}
	s.logger.Info().
		Int64("todo_id", id).
		Msg("deleted todo")

	return affected, nil
}

func scanTodo(row pgx.Row, todo *models.Todo) error {
	return row.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Completed,
		&todo.UserID,
		&todo.CategoryID,
		&todo.Username,
		&todo.CategoryName,
	)
}
