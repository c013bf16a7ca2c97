package get_slot

import (
	"context"

	"github.com/pbp-kelompok-b10/any-venue/internal/service/bookings/models"
)

//go:generate mockery --name=SlotService --output=mocks --outpkg=mocks

type SlotService interface {
	GetSlot(ctx context.Context, slotID int64) (*models.SlotDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
