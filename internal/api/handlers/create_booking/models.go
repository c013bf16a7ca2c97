package create_booking

import (
	"net/http"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	createBooking "github.com/pbp-kelompok-b10/any-venue/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotIDs []int64 `json:"slot_ids" validate:"required,dive,gt=0"`
}

// FailureResponse отказ по одному слоту
type FailureResponse struct {
	SlotID int64  `json:"slot_id"`
	Reason string `json:"reason"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	CreatedBookingIDs []int64           `json:"created_booking_ids"`
	TotalPrice        int64             `json:"total_price"`
	Failures          []FailureResponse `json:"failures"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(session domain.Session) *createBooking.Request {
	return &createBooking.Request{
		Session: session,
		SlotIDs: r.SlotIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		CreatedBookingIDs: make([]int64, 0, len(resp.CreatedBookingIDs)),
		TotalPrice:        resp.TotalPrice,
		Failures:          make([]FailureResponse, 0, len(resp.Failures)),
	}
	out.CreatedBookingIDs = append(out.CreatedBookingIDs, resp.CreatedBookingIDs...)
	for _, f := range resp.Failures {
		out.Failures = append(out.Failures, FailureResponse{SlotID: f.SlotID, Reason: f.Reason()})
	}
	return out
}

// statusOf 201 если создано хоть одно бронирование, иначе код первого отказа
func statusOf(resp *createBooking.Response) int {
	if len(resp.CreatedBookingIDs) > 0 || len(resp.Failures) == 0 {
		if len(resp.CreatedBookingIDs) == 0 {
			return http.StatusOK
		}
		return http.StatusCreated
	}

	switch resp.Failures[0].Reason() {
	case createBooking.ReasonNotFound:
		return http.StatusNotFound
	case createBooking.ReasonConflict:
		return http.StatusConflict
	case createBooking.ReasonSlotInPast:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
