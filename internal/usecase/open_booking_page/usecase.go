package open_booking_page

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	venueRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/venue"
	"github.com/pbp-kelompok-b10/any-venue/pkg/types"
)

var tracer = otel.Tracer("any-venue/usecase/open_booking_page")

// UseCase открытие страницы бронирования площадки.
// Запускает eager-очистку: прошедшие дни удаляются, ближайшие дни генерируются для всех площадок.
type UseCase struct {
	venueRepo    VenueRepository
	sweeper      Sweeper
	prefetchDays int
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	venueRepo VenueRepository,
	sweeper Sweeper,
	prefetchDays int,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		sweeper:      sweeper,
		prefetchDays: prefetchDays,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracer.Start(ctx, "OpenBookingPage")
	defer span.End()
	span.SetAttributes(attribute.Int64("venue.id", req.VenueID))

	uc.logger.Info("OpenBookingPage: venue=%d", req.VenueID)

	// 1. Площадка должна существовать
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("OpenBookingPage: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("OpenBookingPage: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 2. Sweep по всем площадкам
	result, err := uc.sweeper.Sweep(ctx, now)
	if err != nil {
		uc.logger.Error("OpenBookingPage: sweep failed: %v", err)
		return nil, fmt.Errorf("%w: sweep failed: %v", ErrInternal, err)
	}

	today := types.DateOf(now)
	dates := make([]time.Time, 0, uc.prefetchDays)
	for i := 0; i < uc.prefetchDays; i++ {
		dates = append(dates, types.AddDays(today, i))
	}

	return &Response{
		Venue: venue,
		Today: today,
		Dates: dates,
		Sweep: result,
	}, nil
}
