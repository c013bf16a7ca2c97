package slots

import (
	"context"
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ExistsForDate(ctx context.Context, venueID int64, date time.Time) (bool, error)
	CreateBatch(ctx context.Context, slots []*domain.Slot) (int, error)
	ListByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]*domain.Slot, error)
	SetBooked(ctx context.Context, id int64, booked bool) error
	DeleteBefore(ctx context.Context, date time.Time) (int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	DeleteBySlotID(ctx context.Context, slotID int64) (int64, error)
	DeleteBeforeDate(ctx context.Context, date time.Time) (int64, error)
}

// VenueRepository интерфейс справочника площадок
type VenueRepository interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий в брокер
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics доменные счётчики
type Metrics interface {
	AddSlotsGenerated(n int)
	AddSlotsPurged(n int)
	AddBookingsReconciled(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
