package cancel_booking

import (
	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	cancelBooking "github.com/pbp-kelompok-b10/any-venue/internal/usecase/cancel_booking"
)

const (
	statusCancelled = "cancelled"
	statusNotFound  = "not_found"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	SlotID int64 `json:"slot_id" validate:"required,gt=0"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Status    string `json:"status"`
	BookingID int64  `json:"booking_id,omitempty"`
	SlotID    int64  `json:"slot_id,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(session domain.Session) *cancelBooking.Request {
	return &cancelBooking.Request{
		Session: session,
		SlotID:  r.SlotID,
	}
}

func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		Status:    statusCancelled,
		BookingID: resp.BookingID,
		SlotID:    resp.SlotID,
	}
}
