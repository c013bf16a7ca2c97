package venue

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
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue.repository: venue not found")

	ErrBuildQuery = errors.New("venue.repository: failed to build query")
	ErrExecQuery  = errors.New("venue.repository: failed to execute query")
	ErrScanRow    = errors.New("venue.repository: failed to scan row")
)

// Repository справочник площадок. Площадки создаются владельцами в другом сервисе,
// здесь только чтение и каскадное удаление при смене роли.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"price",
		"city",
		"category",
		"type",
		"address",
		"description",
		"image_url",
	).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Venue
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.OwnerID,
		&v.Name,
		&v.Price,
		&v.City,
		&v.Category,
		&v.Type,
		&v.Address,
		&v.Description,
		&v.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return &v, nil
}

// ListIDs все ID площадок (для sweep)
func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("venues").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListIDs - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// DeleteByOwner удаляет площадки владельца. Слоты и бронирования уходят по ON DELETE CASCADE.
func (r *Repository) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venues").
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
