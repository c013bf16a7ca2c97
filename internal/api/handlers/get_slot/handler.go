package get_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	"github.com/pbp-kelompok-b10/any-venue/internal/service/bookings"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgSlotNotFound  = "слот не найден"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("GET /slots/{id} - Invalid slot ID: %s", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.GetSlot(r.Context(), slotID)
	if err != nil {
		switch {
		// площадка слота могла быть удалена вместе с владельцем
		case errors.Is(err, bookings.ErrSlotNotFound), errors.Is(err, bookings.ErrVenueNotFound):
			h.logger.Warn("GET /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("GET /slots/{id} - Failed to get slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
