package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrTodoNotFound       = fmt.Errorf("todo %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrCategoryNotFound   = fmt.Errorf("category %w", ErrNotFound)
	ErrTodoLogNotFound    = fmt.Errorf("todo log %w", ErrNotFound)
	ErrTodoDetailNotFound = fmt.Errorf("todo detail %w", ErrNotFound)

	ErrInvalidQuery     = errors.New("invalid query")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrMissingField     = errors.New("required field is missing")
	ErrDataAccess       = errors.New("data access failed")
)

// classifyError translates a driver error into one of the package errors.
// Constraint violations the client can fix keep their own error, anything
// else is ErrDataAccess with the driver error still in the chain. Constraint
// names stay out of the result, callers log the driver error instead.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return ErrInvalidReference
		case pgerrcode.NotNullViolation:
			return fmt.Errorf("%w: %s", ErrMissingField, pgErr.ColumnName)
		}
	}
	return fmt.Errorf("%w: %w", ErrDataAccess, err)
}
