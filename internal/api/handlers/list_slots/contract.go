package list_slots

import (
	"context"

	listSlots "github.com/pbp-kelompok-b10/any-venue/internal/usecase/list_slots"
)

//go:generate mockery --name=ListSlotsUseCase --output=mocks --outpkg=mocks

type ListSlotsUseCase interface {
	Execute(ctx context.Context, req *listSlots.Request) (*listSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
