package list_slots

import (
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/pkg/types"
)

// Request модель запроса списка слотов
type Request struct {
	VenueID int64
	Date    *time.Time      // nil: дата не передана, ответ пустой
	Session *domain.Session // nil для анонимного запроса
}

// Response слоты площадки на дату
type Response struct {
	VenueID   int64
	Date      time.Time
	InHorizon bool
	Slots     []Slot
}

// Slot модель слота в выдаче
type Slot struct {
	ID                    int64
	StartTime             types.TimeString
	EndTime               types.TimeString
	IsBooked              bool
	IsBookedByCurrentUser bool
	Price                 int64
}
