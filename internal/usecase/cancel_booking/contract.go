package cancel_booking

import (
	"context"
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	SetBooked(ctx context.Context, id int64, booked bool) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByUserAndSlot(ctx context.Context, userID, slotID int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий в брокер
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type Metrics interface {
	IncBookingsCancelled()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider текущее время в часовом поясе площадок
type RealTimeProvider struct {
	Location *time.Location
}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}
