package broker

import "time"

// Routing keys
const (
	KeyBookingCreated   = "booking.created"
	KeyBookingCancelled = "booking.cancelled"
	KeySlotsSwept       = "slots.swept"
)

// BookingCreated публикуется после коммита каждого созданного бронирования
type BookingCreated struct {
	BookingID  int64     `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	SlotID     int64     `json:"slot_id"`
	VenueID    int64     `json:"venue_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	TotalPrice int64     `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingCancelled публикуется после отмены бронирования пользователем
type BookingCancelled struct {
	BookingID  int64     `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	SlotID     int64     `json:"slot_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// SlotsSwept итог очистки прошедших слотов и предгенерации
type SlotsSwept struct {
	PurgedSlots      int64     `json:"purged_slots"`
	PurgedBookings   int64     `json:"purged_bookings"`
	ReleasedBookings int       `json:"released_bookings"`
	GeneratedSlots   int       `json:"generated_slots"`
	Venues           int       `json:"venues"`
	OccurredAt       time.Time `json:"occurred_at"`
}
