package list_slots

import (
	"context"
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

// VenueRepository интерфейс справочника площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBookedSlotIDs(ctx context.Context, userID int64, slotIDs []int64) ([]int64, error)
}

// HorizonManager ленивая генерация и очистка истёкших слотов
type HorizonManager interface {
	EnsureSlotsForDate(ctx context.Context, venueID int64, date, now time.Time) (bool, error)
	Reconcile(ctx context.Context, venueID int64, date, now time.Time) ([]*domain.Slot, error)
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
