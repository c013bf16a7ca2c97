package profiles

import (
	"context"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
}

type VenueRepository interface {
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type EventRepository interface {
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type BookingRepository interface {
	DeleteByUser(ctx context.Context, userID int64) ([]int64, error)
}

type SlotRepository interface {
	ReleaseMany(ctx context.Context, ids []int64) (int64, error)
}

type ReviewRepository interface {
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
