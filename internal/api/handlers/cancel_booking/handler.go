package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	"github.com/pbp-kelompok-b10/any-venue/internal/api/middleware"
	cancelBooking "github.com/pbp-kelompok-b10/any-venue/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgCancellationClosed = "слот уже закончился, отмена невозможна"
	msgInvalidSlotID      = "некорректный ID слота"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Validation failed: user_id=%d, error=%v", session.UserID, err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session))
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found: user_id=%d, slot_id=%d", session.UserID, req.SlotID)
			handlers.RespondJSON(w, http.StatusNotFound, &CancelBookingResponse{Status: statusNotFound})

		case errors.Is(err, cancelBooking.ErrCancellationClosed):
			h.logger.Warn("POST /bookings/cancel - Slot already ended: user_id=%d, slot_id=%d", session.UserID, req.SlotID)
			handlers.RespondForbidden(w, msgCancellationClosed)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel booking: user_id=%d, slot_id=%d, error=%v",
				session.UserID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled: booking_id=%d, user_id=%d, slot_id=%d",
		result.BookingID, session.UserID, result.SlotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
