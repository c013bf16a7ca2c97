package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/pbp-kelompok-b10/any-venue/pkg/dbmetrics"
	"github.com/pbp-kelompok-b10/any-venue/pkg/psqlbuilder"
)

var (
	ErrBuildQuery = errors.New("review.repository: failed to build query")
	ErrExecQuery  = errors.New("review.repository: failed to execute query")
)

type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// DeleteByUser удаляет отзывы пользователя (смена роли USER -> OWNER)
func (r *Repository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reviews").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByUser - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByUser - execute delete: %v", ErrExecQuery, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByUser - get rows affected: %v", ErrExecQuery, err)
	}

	return n, nil
}
