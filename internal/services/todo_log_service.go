package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
)

type todoLogServiceImpl struct {
	logger zerolog.Logger
	db     DB
}

func NewTodoLogService(
	logger zerolog.Logger,
	db DB,
) TodoLogService {
	return &todoLogServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *todoLogServiceImpl) ListTodoLogs(ctx context.Context) ([]*models.TodoLog, error) {
	const selectTodoLogsQuery = `
SELECT id,
       todo_id,
       action,
       created_at
FROM todo_logs
ORDER BY id
`
	rows, err := s.db.Query(ctx, selectTodoLogsQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select todo logs")
		return nil, classifyError(err)
	}
	defer rows.Close()

	logs := make([]*models.TodoLog, 0)
	for rows.Next() {
		log := new(models.TodoLog)
		err = rows.Scan(
			&log.ID,
			&log.TodoID,
			&log.Action,
			&log.CreatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan todo log")
			return nil, classifyError(err)
		}
		logs = append(logs, log)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int("count", len(logs)).
		Msg("selected todo logs")

	return logs, nil
}

func (s *todoLogServiceImpl) GetTodoLogByID(ctx context.Context, id int64) (*models.TodoLog, error) {
	const selectTodoLogByIDQuery = `
SELECT id,
       todo_id,
       action,
       created_at
FROM todo_logs
WHERE id = $1
`
	log := new(models.TodoLog)
	err := s.db.QueryRow(ctx, selectTodoLogByIDQuery, id).Scan(
		&log.ID,
		&log.TodoID,
		&log.Action,
		&log.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().
				Int64("todo_log_id", id).
				Msg("todo log not found")
			return nil, ErrTodoLogNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_log_id", id).
			Msg("failed to select todo log by id")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int64("todo_log_id", id).
		Msg("selected todo log by id")

	return log, nil
}

// CreateTodoLog does not check that the todo exists.
func (s *todoLogServiceImpl) CreateTodoLog(ctx context.Context, fields TodoLogFields) (int64, error) {
	query, args := buildInsertQuery("todo_logs", fields.columns())

	var logID int64
	err := s.db.QueryRow(ctx, query, args...).Scan(&logID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert todo log")
		return 0, classifyError(err)
	}
	s.logger.Info().
		Int64("todo_log_id", logID).
		Int64("todo_id", fields.TodoID.Value).
		Msg("created todo log")

	return logID, nil
}

func (s *todoLogServiceImpl) DeleteTodoLog(ctx context.Context, id int64) (int64, error) {
	const deleteTodoLogQuery = `DELETE FROM todo_logs WHERE id = $1`

	tag, err := s.db.Exec(ctx, deleteTodoLogQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("todo_log_id", id).
			Msg("failed to delete todo log")
		return 0, classifyError(err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Debug().
			Int64("todo_log_id", id).
			Msg("no todo log to delete")
		return 0, nil
	}
	s.logger.Info().
		Int64("todo_log_id", id).
		Msg("deleted todo log")

	return tag.RowsAffected(), nil
}
