package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/pkg/dbmetrics"
	"github.com/pbp-kelompok-b10/any-venue/pkg/psqlbuilder"
)

var bookingColumns = []string{"id", "user_id", "slot_id", "total_price", "created_at"}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование слота.
// Второе бронирование того же слота упирается в UNIQUE (slot_id) и возвращает ErrBookingExists.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("user_id", "slot_id", "total_price").
		Values(booking.UserID, booking.SlotID, booking.TotalPrice).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrBookingExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByUserAndSlot ищет бронирование слота конкретным пользователем.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByUserAndSlot(ctx context.Context, userID, slotID int64) (*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID, "slot_id": slotID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.getOne(ctx, "GetByUserAndSlot", selectBuilder)
}

// GetBySlotID получает бронирование слота
func (r *Repository) GetBySlotID(ctx context.Context, slotID int64) (*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID})

	return r.getOne(ctx, "GetBySlotID", selectBuilder)
}

// Delete удаляет бронирование по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteBySlotID удаляет бронирование слота, если оно есть. Возвращает число удалённых строк.
func (r *Repository) DeleteBySlotID(ctx context.Context, slotID int64) (int64, error) {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBySlotID - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "DeleteBySlotID", query, args)
}

// DeleteBeforeDate удаляет бронирования слотов, дата которых раньше date
func (r *Repository) DeleteBeforeDate(ctx context.Context, date time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete("bookings").
		Where("slot_id IN (SELECT id FROM booking_slots WHERE date < ?)", date).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBeforeDate - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "DeleteBeforeDate", query, args)
}

// DeleteByUser удаляет все бронирования пользователя и возвращает освободившиеся слоты
func (r *Repository) DeleteByUser(ctx context.Context, userID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING slot_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteByUser - build delete query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteByUser - execute delete: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIDs(rows, "DeleteByUser")
}

// ListBookedSlotIDs возвращает те slotIDs, которые забронированы пользователем
func (r *Repository) ListBookedSlotIDs(ctx context.Context, userID int64, slotIDs []int64) ([]int64, error) {
	if len(slotIDs) == 0 {
		return []int64{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_id").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID, "slot_id": slotIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIDs(rows, "ListBookedSlotIDs")
}

// ListByUser бронирования пользователя вместе со слотом и площадкой,
// ближайшие первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.UserBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.slot_id",
		"v.id",
		"v.name",
		"s.date",
		"s.start_time",
		"s.end_time",
		"b.total_price",
		"b.created_at",
	).
		From("bookings b").
		Join("booking_slots s ON s.id = b.slot_id").
		Join("venues v ON v.id = s.venue_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("s.date ASC", "s.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.UserBooking, 0)
	for rows.Next() {
		var ub domain.UserBooking
		if err := rows.Scan(
			&ub.BookingID,
			&ub.SlotID,
			&ub.VenueID,
			&ub.VenueName,
			&ub.Date,
			&ub.StartTime,
			&ub.EndTime,
			&ub.TotalPrice,
			&ub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &ub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func (r *Repository) getOne(ctx context.Context, op string, sb squirrel.SelectBuilder) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SlotID,
		&booking.TotalPrice,
		&booking.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return &booking, nil
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

func scanIDs(rows *sql.Rows, op string) ([]int64, error) {
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %s - scan id: %v", ErrScanRow, op, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return ids, nil
}
