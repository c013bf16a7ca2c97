package open_booking_page

import (
	"context"
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/service/slots"
)

// VenueRepository интерфейс справочника площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Sweeper очистка прошедших дней и предгенерация
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (*slots.SweepResult, error)
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
