package list_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	venueRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/venue"
	"github.com/pbp-kelompok-b10/any-venue/pkg/types"
)

var tracer = otel.Tracer("any-venue/usecase/list_slots")

// UseCase use case получения слотов площадки на дату
type UseCase struct {
	venueRepo    VenueRepository
	bookingRepo  BookingRepository
	horizon      HorizonManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	bookingRepo BookingRepository,
	horizon HorizonManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		bookingRepo:  bookingRepo,
		horizon:      horizon,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute возвращает активные слоты площадки на дату, отсортированные по времени начала.
// Побочные эффекты: ленивая генерация слотов в пределах горизонта и освобождение истёкших.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	ctx, span := tracer.Start(ctx, "ListSlots")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int64("venue.id", req.VenueID))

	// 1. Без даты отдаём пустой список
	if req.Date == nil {
		uc.logger.Info("ListSlots: venue=%d, no date given", req.VenueID)
		return &Response{VenueID: req.VenueID, Slots: []Slot{}}, nil
	}

	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venue id must be positive", ErrInvalidInput)
	}

	date := types.DateOf(*req.Date)
	span.SetAttributes(attribute.String("slot.date", date.Format(domain.DateFormat)))
	uc.logger.Info("ListSlots: venue=%d, date=%s", req.VenueID, date.Format(domain.DateFormat))

	// 2. Площадка нужна для цены
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("ListSlots: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("ListSlots: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 3. Генерация по требованию (только для [today, today+horizon])
	inHorizon, err := uc.horizon.EnsureSlotsForDate(ctx, venue.ID, date, now)
	if err != nil {
		uc.logger.Error("ListSlots: failed to ensure slots: %v", err)
		return nil, fmt.Errorf("%w: failed to ensure slots: %v", ErrInternal, err)
	}

	// 4. Отбрасываем истёкшие слоты, их бронирования снимаются
	slots, err := uc.horizon.Reconcile(ctx, venue.ID, date, now)
	if err != nil {
		uc.logger.Error("ListSlots: failed to reconcile slots: %v", err)
		return nil, fmt.Errorf("%w: failed to reconcile slots: %v", ErrInternal, err)
	}

	// 5. Отмечаем слоты текущего пользователя
	mine := map[int64]bool{}
	if req.Session != nil && len(slots) > 0 {
		ids := make([]int64, 0, len(slots))
		for _, s := range slots {
			if s.IsBooked {
				ids = append(ids, s.ID)
			}
		}
		if len(ids) > 0 {
			booked, err := uc.bookingRepo.ListBookedSlotIDs(ctx, req.Session.UserID, ids)
			if err != nil {
				uc.logger.Error("ListSlots: failed to get user bookings: %v", err)
				return nil, fmt.Errorf("%w: failed to get user bookings: %v", ErrInternal, err)
			}
			for _, id := range booked {
				mine[id] = true
			}
		}
	}

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			ID:                    s.ID,
			StartTime:             s.StartTime,
			EndTime:               s.EndTime,
			IsBooked:              s.IsBooked,
			IsBookedByCurrentUser: mine[s.ID],
			Price:                 venue.Price,
		})
	}

	span.SetAttributes(attribute.Int("slots.count", len(out)))
	uc.logger.Info("ListSlots: venue=%d, date=%s, %d slots, in horizon=%t",
		venue.ID, date.Format(domain.DateFormat), len(out), inHorizon)

	return &Response{
		VenueID:   venue.ID,
		Date:      date,
		InHorizon: inHorizon,
		Slots:     out,
	}, nil
}
