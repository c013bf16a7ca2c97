package cancel_booking

import "github.com/pbp-kelompok-b10/any-venue/internal/domain"

// Request модель запроса на отмену бронирования слота
type Request struct {
	Session domain.Session
	SlotID  int64
}

// Response отменённое бронирование
type Response struct {
	BookingID int64
	SlotID    int64
}
