package domain

import (
	"time"

	"github.com/pbp-kelompok-b10/any-venue/pkg/types"
)

// Booking reservation of exactly one slot by one user
type Booking struct {
	ID         int64
	UserID     int64
	SlotID     int64
	TotalPrice int64 // цена площадки на момент бронирования, не меняется
	CreatedAt  time.Time
}

// UserBooking booking joined with its slot and venue, for the "my bookings" list
type UserBooking struct {
	BookingID  int64
	SlotID     int64
	VenueID    int64
	VenueName  string
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	TotalPrice int64
	CreatedAt  time.Time
}
