package booking_page

import (
	"context"

	openBookingPage "github.com/pbp-kelompok-b10/any-venue/internal/usecase/open_booking_page"
)

//go:generate mockery --name=BookingPageUseCase --output=mocks --outpkg=mocks

type BookingPageUseCase interface {
	Execute(ctx context.Context, req *openBookingPage.Request) (*openBookingPage.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
