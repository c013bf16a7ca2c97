package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/pkg/dbmetrics"
	"github.com/pbp-kelompok-b10/any-venue/pkg/psqlbuilder"
)

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile.repository: profile not found")

	ErrBuildQuery = errors.New("profile.repository: failed to build query")
	ErrExecQuery  = errors.New("profile.repository: failed to execute query")
	ErrScanRow    = errors.New("profile.repository: failed to scan row")
)

type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль. Внутри транзакции блокирует строку,
// чтобы две смены роли не выполнялись параллельно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "username", "role").
		From("profiles").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Username, &p.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	return &p, nil
}

// UpdateRole меняет роль профиля
func (r *Repository) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		Set("role", string(role)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRole - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRole - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRole - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
