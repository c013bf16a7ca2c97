package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/infra/broker"
	"github.com/pbp-kelompok-b10/any-venue/pkg/types"
)

// Horizon keeps materialized slots inside the rolling window:
// purges past days, pre-generates upcoming ones and releases expired bookings.
type Horizon struct {
	generator   *Generator
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     Metrics
	logger      Logger
	window      Window
}

func NewHorizon(
	generator *Generator,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
	window Window,
) *Horizon {
	return &Horizon{
		generator:   generator,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
		window:      window,
	}
}

// Sweep removes every slot and booking dated before today and
// pre-generates PrefetchDays days (today included) for all venues.
// now must already be in the venue timezone.
func (h *Horizon) Sweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	today := types.DateOf(now)
	result := &SweepResult{}

	// 1. Чистим прошлые дни одной транзакцией: сначала бронирования, затем слоты
	err := h.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		purgedBookings, err := h.bookingRepo.DeleteBeforeDate(txCtx, today)
		if err != nil {
			return fmt.Errorf("delete bookings: %v", err)
		}
		purgedSlots, err := h.slotRepo.DeleteBefore(txCtx, today)
		if err != nil {
			return fmt.Errorf("delete slots: %v", err)
		}
		result.PurgedBookings = purgedBookings
		result.PurgedSlots = purgedSlots
		return nil
	})
	if err != nil {
		h.logger.Error("Sweep: failed to purge data before %s: %v", today.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Sweep - purge: %v", ErrInternal, err)
	}

	// 2. Предгенерация на PrefetchDays дней вперёд
	venueIDs, err := h.venueRepo.ListIDs(ctx)
	if err != nil {
		h.logger.Error("Sweep: failed to list venues: %v", err)
		return nil, fmt.Errorf("%w: Sweep - list venues: %v", ErrInternal, err)
	}
	result.Venues = len(venueIDs)

	for _, venueID := range venueIDs {
		for i := 0; i < h.window.PrefetchDays; i++ {
			created, err := h.generator.GenerateSlots(ctx, venueID, types.AddDays(today, i))
			if err != nil {
				return nil, err
			}
			result.GeneratedSlots += created
		}

		// 3. Слоты, закончившиеся сегодня, освобождаем тем же путём, что и при чтении
		_, released, err := h.reconcile(ctx, venueID, today, now)
		if err != nil {
			return nil, err
		}
		result.ReleasedBookings += released
	}

	h.metrics.AddSlotsPurged(int(result.PurgedSlots))
	h.logger.Info("Sweep: purged %d slots and %d bookings, released %d expired bookings, generated %d slots for %d venues",
		result.PurgedSlots, result.PurgedBookings, result.ReleasedBookings, result.GeneratedSlots, result.Venues)

	evt := broker.SlotsSwept{
		PurgedSlots:      result.PurgedSlots,
		PurgedBookings:   result.PurgedBookings,
		ReleasedBookings: result.ReleasedBookings,
		GeneratedSlots:   result.GeneratedSlots,
		Venues:           result.Venues,
		OccurredAt:       now,
	}
	if err := h.publisher.PublishJSON(ctx, broker.KeySlotsSwept, evt); err != nil {
		h.logger.Warn("Sweep: failed to publish event: %v", err)
	}

	return result, nil
}

// EnsureSlotsForDate lazily generates slots for a date inside [today, today+HorizonDays].
// Returns false for past dates and dates beyond the horizon, without generating anything.
func (h *Horizon) EnsureSlotsForDate(ctx context.Context, venueID int64, date, now time.Time) (bool, error) {
	today := types.DateOf(now)
	day := types.DateOf(date)

	if day.Before(today) || day.After(types.AddDays(today, h.window.HorizonDays)) {
		return false, nil
	}

	if _, err := h.generator.GenerateSlots(ctx, venueID, day); err != nil {
		return false, err
	}
	return true, nil
}

// Reconcile returns the venue's non-expired slots for the date, ordered by start time.
// Expired slots that are still booked lose their booking and become free again.
// Sweep runs the same routine for today.
func (h *Horizon) Reconcile(ctx context.Context, venueID int64, date, now time.Time) ([]*domain.Slot, error) {
	active, _, err := h.reconcile(ctx, venueID, types.DateOf(date), now)
	return active, err
}

func (h *Horizon) reconcile(ctx context.Context, venueID int64, day, now time.Time) ([]*domain.Slot, int, error) {
	all, err := h.slotRepo.ListByVenueAndDate(ctx, venueID, day)
	if err != nil {
		h.logger.Error("Reconcile: failed to list slots for venue=%d, date=%s: %v",
			venueID, day.Format(domain.DateFormat), err)
		return nil, 0, fmt.Errorf("%w: Reconcile - list slots: %v", ErrInternal, err)
	}

	active := make([]*domain.Slot, 0, len(all))
	released := 0

	for _, slot := range all {
		if !slot.IsExpired(now) {
			active = append(active, slot)
			continue
		}
		if !slot.IsBooked {
			continue
		}

		err := h.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if _, err := h.bookingRepo.DeleteBySlotID(txCtx, slot.ID); err != nil {
				return err
			}
			return h.slotRepo.SetBooked(txCtx, slot.ID, false)
		})
		if err != nil {
			h.logger.Error("Reconcile: failed to release expired slot id=%d: %v", slot.ID, err)
			return nil, 0, fmt.Errorf("%w: Reconcile - release slot %d: %v", ErrInternal, slot.ID, err)
		}
		released++
	}

	if released > 0 {
		h.metrics.AddBookingsReconciled(released)
		h.logger.Info("Reconcile: released %d expired bookings for venue=%d, date=%s",
			released, venueID, day.Format(domain.DateFormat))
	}

	return active, released, nil
}
