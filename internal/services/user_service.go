package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
)

type userServiceImpl struct {
	logger zerolog.Logger
	db     DB
}

func NewUserService(
	logger zerolog.Logger,
	db DB,
) UserService {
	return &userServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	const selectUsersQuery = `
SELECT id,
       username,
       email
FROM users
ORDER BY id
`
	rows, err := s.db.Query(ctx, selectUsersQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select users")
		return nil, classifyError(err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user := new(models.User)
		err = rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan user")
			return nil, classifyError(err)
		}
		users = append(users, user)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int("count", len(users)).
		Msg("selected users")

	return users, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const selectUserByIDQuery = `
SELECT id,
       username,
       email
FROM users
WHERE id = $1
`
	user := new(models.User)
	err := s.db.QueryRow(ctx, selectUserByIDQuery, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().
				Int64("user_id", id).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("user_id", id).
			Msg("failed to select user by id")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int64("user_id", id).
		Msg("selected user by id")

	return user, nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, fields UserFields) (int64, error) {
	query, args := buildInsertQuery("users", fields.columns())

	var userID int64
	err := s.db.QueryRow(ctx, query, args...).Scan(&userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return 0, classifyError(err)
	}
	s.logger.Info().
		Int64("user_id", userID).
		Msg("created user")

	return userID, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, fields UserFields) (int64, error) {
	query, args, err := buildUpdateQuery("users", id, fields.columns())
	if err != nil {
		return 0, err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", id).
			Msg("failed to update user")
		return 0, classifyError(err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Debug().
			Int64("user_id", id).
			Msg("no user to update")
		return 0, nil
	}
	s.logger.Info().
		Int64("user_id", id).
		Msg("updated user")

	return tag.RowsAffected(), nil
}

// DeleteUser leaves the todos of the user in place, their user_id is
// cleared by the foreign key.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) (int64, error) {
	const deleteUserQuery = `DELETE FROM users WHERE id = $1`

	tag, err := s.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", id).
			Msg("failed to delete user")
		return 0, classifyError(err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Debug().
			Int64("user_id", id).
			Msg("no user to delete")
		return 0, nil
	}
	s.logger.Info().
		Int64("user_id", id).
		Msg("deleted user")

	return tag.RowsAffected(), nil
}
