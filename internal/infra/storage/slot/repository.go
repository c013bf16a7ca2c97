package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/pkg/dbmetrics"
	"github.com/pbp-kelompok-b10/any-venue/pkg/psqlbuilder"
)

var slotColumns = []string{"id", "venue_id", "date", "start_time", "end_time", "is_booked"}

// Repository репозиторий слотов бронирования
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ExistsForDate проверяет, сгенерированы ли уже слоты площадки на дату
func (r *Repository) ExistsForDate(ctx context.Context, venueID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("booking_slots").
		Where(squirrel.Eq{"venue_id": venueID, "date": date}).
		Limit(1).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDate - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsForDate - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// CreateBatch вставляет слоты одним запросом.
// Уже существующие (venue_id, date, start_time) пропускаются, возвращается число вставленных.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.Slot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_slots").
		Columns("venue_id", "date", "start_time", "end_time", "is_booked")
	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.VenueID, s.Date, s.StartTime, s.EndTime, s.IsBooked)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (venue_id, date, start_time) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return int(inserted), nil
}

// GetByID получает слот. Внутри транзакции строка блокируется (FOR UPDATE),
// чтобы проверка is_booked и бронирование шли атомарно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("booking_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.VenueID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.IsBooked,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListByVenueAndDate слоты площадки на дату по возрастанию start_time
func (r *Repository) ListByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("booking_slots").
		Where(squirrel.Eq{"venue_id": venueID, "date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.VenueID, &s.Date, &s.StartTime, &s.EndTime, &s.IsBooked); err != nil {
			return nil, fmt.Errorf("%w: ListByVenueAndDate - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// SetBooked выставляет флаг is_booked
func (r *Repository) SetBooked(ctx context.Context, id int64, booked bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_slots").
		Set("is_booked", booked).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// ReleaseMany сбрасывает is_booked у переданных слотов
func (r *Repository) ReleaseMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := psqlbuilder.Update("booking_slots").
		Set("is_booked", false).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseMany - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "ReleaseMany", query, args)
}

// DeleteBefore удаляет все слоты с датой раньше date
func (r *Repository) DeleteBefore(ctx context.Context, date time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete("booking_slots").
		Where(squirrel.Lt{"date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "DeleteBefore", query, args)
}

func (r *Repository) exec(ctx context.Context, op, query string, args []interface{}) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected, nil
}
