package open_booking_page

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("open_booking_page: venue not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("open_booking_page: internal error")
)
