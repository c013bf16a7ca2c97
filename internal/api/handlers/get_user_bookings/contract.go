package get_user_bookings

import (
	"context"

	"github.com/pbp-kelompok-b10/any-venue/internal/service/bookings/models"
)

//go:generate mockery --name=BookingsService --output=mocks --outpkg=mocks

type BookingsService interface {
	GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
