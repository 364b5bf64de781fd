package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
)

type todoDetailServiceImpl struct {
	logger zerolog.Logger
	db     DB
}

func NewTodoDetailService(
	logger zerolog.Logger,
	db DB,
) TodoDetailService {
	return &todoDetailServiceImpl{
		logger: logger,
		db:     db,
	}
}

// The columns of todo_details are owned by another process, so rows are
// read whole into maps keyed by column name.
func (s *todoDetailServiceImpl) ListTodoDetails(ctx context.Context) ([]models.TodoDetail, error) {
	const selectTodoDetailsQuery = `SELECT * FROM todo_details ORDER BY id`

	rows, err := s.db.Query(ctx, selectTodoDetailsQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select todo details")
		return nil, classifyError(err)
	}

	details, err := pgx.CollectRows(rows, rowToTodoDetail)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to collect todo details")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int("count", len(details)).
		Msg("selected todo details")

	return details, nil
}

func (s *todoDetailServiceImpl) GetTodoDetailByID(ctx context.Context, id int64) (models.TodoDetail, error) {
	const selectTodoDetailByIDQuery = `SELECT * FROM todo_details WHERE id = $1`

	rows, err := s.db.Query(ctx, selectTodoDetailByIDQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("todo_detail_id", id).
			Msg("failed to select todo detail by id")
		return nil, classifyError(err)
	}

	detail, err := pgx.CollectOneRow(rows, rowToTodoDetail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().
				Int64("todo_detail_id", id).
				Msg("todo detail not found")
			return nil, ErrTodoDetailNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_detail_id", id).
			Msg("failed to collect todo detail")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int64("todo_detail_id", id).
		Msg("selected todo detail by id")

	return detail, nil
}

func rowToTodoDetail(row pgx.CollectableRow) (models.TodoDetail, error) {
	m, err := pgx.RowToMap(row)
	if err != nil {
		return nil, err
	}
	return models.TodoDetail(m), nil
}
