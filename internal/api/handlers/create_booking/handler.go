package create_booking

import (
	"errors"
	"net/http"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	"github.com/pbp-kelompok-b10/any-venue/internal/api/middleware"
	createBooking "github.com/pbp-kelompok-b10/any-venue/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "бронировать слоты могут только пользователи"
	msgInvalidInput       = "некорректный список слотов"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: user_id=%d, error=%v", session.UserID, err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrForbidden):
			h.logger.Warn("POST /bookings - Forbidden: user_id=%d, role=%s", session.UserID, session.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", session.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create bookings: user_id=%d, error=%v", session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := statusOf(result)
	if len(result.Failures) > 0 {
		h.logger.Warn("POST /bookings - %d of %d slots rejected: user_id=%d, first_reason=%s",
			len(result.Failures), len(req.SlotIDs), session.UserID, result.Failures[0].Reason())
	}
	h.logger.Info("POST /bookings - Bookings created: user_id=%d, created=%d, total_price=%d",
		session.UserID, len(result.CreatedBookingIDs), result.TotalPrice)

	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
