package cancel_booking

import (
	"context"

	cancelBooking "github.com/pbp-kelompok-b10/any-venue/internal/usecase/cancel_booking"
)

//go:generate mockery --name=CancelBookingUseCase --output=mocks --outpkg=mocks

type CancelBookingUseCase interface {
	Execute(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
