package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда у пользователя нет бронирования этого слота
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrCancellationClosed возвращается, когда слот уже закончился
	ErrCancellationClosed = errors.New("cancel_booking: slot has already ended")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
