package open_booking_page

import (
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/service/slots"
)

type Request struct {
	VenueID int64
}

// Response данные страницы бронирования
type Response struct {
	Venue *domain.Venue
	Today time.Time
	Dates []time.Time // даты, для которых слоты уже сгенерированы
	Sweep *slots.SweepResult
}
