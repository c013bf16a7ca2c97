package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/pbp-kelompok-b10/any-venue/pkg/dbmetrics"
	"github.com/pbp-kelompok-b10/any-venue/pkg/psqlbuilder"
)

var (
	ErrBuildQuery = errors.New("event.repository: failed to build query")
	ErrExecQuery  = errors.New("event.repository: failed to execute query")
)

// Repository события владельцев. CRUD событий живёт в другом сервисе,
// здесь только удаление при смене роли OWNER -> USER.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// DeleteByOwner удаляет события владельца
func (r *Repository) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("events").
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwner - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwner - execute delete: %v", ErrExecQuery, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwner - get rows affected: %v", ErrExecQuery, err)
	}

	return n, nil
}
