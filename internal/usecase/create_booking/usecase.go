package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/infra/broker"
	bookingRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/booking"
	slotRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/slot"
)

var tracer = otel.Tracer("any-venue/usecase/create_booking")

// UseCase use case для создания бронирований
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute бронирует слоты по порядку, каждый в своей сериализуемой транзакции.
// Отказ по одному слоту не отменяет уже созданные бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracer.Start(ctx, "CreateBooking")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("user.id", req.Session.UserID),
		attribute.Int("slots.requested", len(req.SlotIDs)),
	)

	uc.logger.Info("CreateBooking: user=%d, role=%s, slots=%v", req.Session.UserID, req.Session.Role, req.SlotIDs)

	// 1. Валидация входных данных и роли
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed for user=%d: %v", req.Session.UserID, err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp := &Response{
		CreatedBookingIDs: []int64{},
		Failures:          []Failure{},
	}

	// 2. Каждый слот в отдельной транзакции
	for _, slotID := range req.SlotIDs {
		booking, err := uc.bookSlot(ctx, req.Session.UserID, slotID)
		if err != nil {
			f := Failure{SlotID: slotID, Err: err}
			resp.Failures = append(resp.Failures, f)
			uc.metrics.IncBookingFailure(f.Reason())
			if f.Reason() == ReasonInternal {
				uc.logger.Error("CreateBooking: slot id=%d failed: %v", slotID, err)
			} else {
				uc.logger.Warn("CreateBooking: slot id=%d rejected: %v", slotID, err)
			}
			continue
		}

		resp.CreatedBookingIDs = append(resp.CreatedBookingIDs, booking.ID)
		resp.TotalPrice += booking.TotalPrice
	}

	uc.metrics.AddBookingsCreated(len(resp.CreatedBookingIDs))
	span.SetAttributes(
		attribute.Int("bookings.created", len(resp.CreatedBookingIDs)),
		attribute.Int("bookings.failed", len(resp.Failures)),
	)

	uc.logger.Info("CreateBooking: user=%d, created=%d, failed=%d, total=%d",
		req.Session.UserID, len(resp.CreatedBookingIDs), len(resp.Failures), resp.TotalPrice)

	return resp, nil
}

// bookSlot check-then-act по одному слоту под блокировкой строки
func (uc *UseCase) bookSlot(ctx context.Context, userID, slotID int64) (*domain.Booking, error) {
	now := uc.timeProvider.Now()

	var (
		created *domain.Booking
		slot    *domain.Slot
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error

		// 2.1. Слот с блокировкой FOR UPDATE
		slot, err = uc.slotRepo.GetByID(txCtx, slotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2.2. Свободен и ещё не начался
		if err := validateSlot(slot, now); err != nil {
			return err
		}

		// 2.3. Цена фиксируется на момент бронирования
		venue, err := uc.venueRepo.GetByID(txCtx, slot.VenueID)
		if err != nil {
			return fmt.Errorf("%w: failed to get venue id=%d: %v", ErrInternal, slot.VenueID, err)
		}

		if err := uc.slotRepo.SetBooked(txCtx, slot.ID, true); err != nil {
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:     userID,
			SlotID:     slot.ID,
			TotalPrice: venue.Price,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingExists) {
				return ErrSlotAlreadyBooked
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for slot id=%d", created.ID, slot.ID)

	evt := broker.BookingCreated{
		BookingID:  created.ID,
		UserID:     created.UserID,
		SlotID:     slot.ID,
		VenueID:    slot.VenueID,
		Date:       slot.Date.Format(domain.DateFormat),
		StartTime:  slot.StartTime.String(),
		TotalPrice: created.TotalPrice,
		OccurredAt: now,
	}
	if err := uc.publisher.PublishJSON(ctx, broker.KeyBookingCreated, evt); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", created.ID, err)
	}

	return created, nil
}
