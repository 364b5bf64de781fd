package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
)

type categoryServiceImpl struct {
	logger zerolog.Logger
	db     DB
}

func NewCategoryService(
	logger zerolog.Logger,
	db DB,
) CategoryService {
	return &categoryServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*models.Category, error) {
	const selectCategoriesQuery = `SELECT id, name FROM categories ORDER BY id`

	rows, err := s.db.Query(ctx, selectCategoriesQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select categories")
		return nil, classifyError(err)
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		category := new(models.Category)
		err = rows.Scan(&category.ID, &category.Name)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan category")
			return nil, classifyError(err)
		}
		categories = append(categories, category)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int("count", len(categories)).
		Msg("selected categories")

	return categories, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	const selectCategoryByIDQuery = `SELECT id, name FROM categories WHERE id = $1`

	category := new(models.Category)
	err := s.db.QueryRow(ctx, selectCategoryByIDQuery, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().
				Int64("category_id", id).
				Msg("category not found")
			return nil, ErrCategoryNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("category_id", id).
			Msg("failed to select category by id")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int64("category_id", id).
		Msg("selected category by id")

	return category, nil
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, fields CategoryFields) (int64, error) {
	query, args := buildInsertQuery("categories", fields.columns())

	var categoryID int64
	err := s.db.QueryRow(ctx, query, args...).Scan(&categoryID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert category")
		return 0, classifyError(err)
	}
	s.logger.Info().
		Int64("category_id", categoryID).
		Msg("created category")

	return categoryID, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id int64, fields CategoryFields) (int64, error) {
	query, args, err := buildUpdateQuery("categories", id, fields.columns())
	if err != nil {
		return 0, err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("category_id", id).
			Msg("failed to update category")
		return 0, classifyError(err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Debug().
			Int64("category_id", id).
			Msg("no category to update")
		return 0, nil
	}
	s.logger.Info().
		Int64("category_id", id).
		Msg("updated category")

	return tag.RowsAffected(), nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	const deleteCategoryQuery = `DELETE FROM categories WHERE id = $1`

	tag, err := s.db.Exec(ctx, deleteCategoryQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("category_id", id).
			Msg("failed to delete category")
		return 0, classifyError(err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Debug().
			Int64("category_id", id).
			Msg("no category to delete")
		return 0, nil
	}
	s.logger.Info().
		Int64("category_id", id).
		Msg("deleted category")

	return tag.RowsAffected(), nil
}
