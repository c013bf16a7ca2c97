package create_booking

import (
	"errors"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

// Коды причин отказа по слоту
const (
	ReasonNotFound   = "not_found"
	ReasonConflict   = "conflict"
	ReasonSlotInPast = "slot_in_past"
	ReasonInternal   = "internal"
)

// Request модель запроса на бронирование набора слотов
type Request struct {
	Session domain.Session
	SlotIDs []int64 // обрабатываются по порядку, каждый независимо
}

// Response итог пакетного бронирования. Успешные бронирования
// не откатываются из-за отказов по другим слотам.
type Response struct {
	CreatedBookingIDs []int64
	TotalPrice        int64
	Failures          []Failure
}

// Failure отказ по одному слоту
type Failure struct {
	SlotID int64
	Err    error
}

// Reason код причины для клиента
func (f Failure) Reason() string {
	switch {
	case errors.Is(f.Err, ErrSlotNotFound):
		return ReasonNotFound
	case errors.Is(f.Err, ErrSlotAlreadyBooked):
		return ReasonConflict
	case errors.Is(f.Err, ErrSlotInPast):
		return ReasonSlotInPast
	default:
		return ReasonInternal
	}
}
