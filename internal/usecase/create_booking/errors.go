package create_booking

import "errors"

var (
	// ErrForbidden возвращается, когда бронировать пытается не USER
	ErrForbidden = errors.New("create_booking: only users can book slots")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrSlotInPast возвращается, когда слот уже начался
	ErrSlotInPast = errors.New("create_booking: slot start is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
