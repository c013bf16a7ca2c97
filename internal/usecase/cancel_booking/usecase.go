package cancel_booking

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
)

var tracer = otel.Tracer("any-venue/usecase/cancel_booking")

// UseCase use case отмены бронирования
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
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
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute отменяет бронирование слота текущим пользователем.
// Чужое бронирование неотличимо от отсутствующего: ErrBookingNotFound.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	ctx, span := tracer.Start(ctx, "CancelBooking")
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.Int64("user.id", req.Session.UserID),
		attribute.Int64("slot.id", req.SlotID),
	)

	uc.logger.Info("CancelBooking: user=%d, slot=%d", req.Session.UserID, req.SlotID)

	if req.SlotID <= 0 {
		return nil, fmt.Errorf("%w: slot_id must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	var booking *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Бронирование пользователя на этот слот (FOR UPDATE)
		var err error
		booking, err = uc.bookingRepo.GetByUserAndSlot(txCtx, req.Session.UserID, req.SlotID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Закончившийся слот отменить нельзя
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		if slot.IsExpired(now) {
			return ErrCancellationClosed
		}

		// 3. Удаляем бронирование и освобождаем слот
		if err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}
		if err := uc.slotRepo.SetBooked(txCtx, slot.ID, false); err != nil {
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrCancellationClosed):
			uc.logger.Warn("CancelBooking: user=%d, slot=%d rejected: %v", req.Session.UserID, req.SlotID, err)
		default:
			uc.logger.Error("CancelBooking: user=%d, slot=%d failed: %v", req.Session.UserID, req.SlotID, err)
		}
		return nil, err
	}

	uc.metrics.IncBookingsCancelled()
	uc.logger.Info("CancelBooking: booking id=%d cancelled, slot id=%d released", booking.ID, req.SlotID)

	evt := broker.BookingCancelled{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		SlotID:     req.SlotID,
		OccurredAt: now,
	}
	if err := uc.publisher.PublishJSON(ctx, broker.KeyBookingCancelled, evt); err != nil {
		uc.logger.Warn("CancelBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}

	return &Response{BookingID: booking.ID, SlotID: req.SlotID}, nil
}
