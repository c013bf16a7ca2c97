package bookings

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("bookings: slot not found")

	// ErrVenueNotFound возвращается, когда площадка слота не найдена
	ErrVenueNotFound = errors.New("bookings: venue not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
