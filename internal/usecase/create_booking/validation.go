package create_booking

import (
	"fmt"
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Session.IsUser() {
		return ErrForbidden
	}

	for i, id := range req.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot_ids[%d] must be positive", ErrInvalidInput, i)
		}
	}

	return nil
}

// validateSlot проверяет, что слот можно забронировать в момент now
func validateSlot(slot *domain.Slot, now time.Time) error {
	if slot.IsBooked {
		return ErrSlotAlreadyBooked
	}

	if slot.HasStarted(now) {
		return fmt.Errorf("%w: slot id=%d starts at %s",
			ErrSlotInPast, slot.ID, slot.StartsAt(now.Location()).Format(time.RFC3339))
	}

	return nil
}
