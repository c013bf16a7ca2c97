package list_slots

import (
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	listSlots "github.com/pbp-kelompok-b10/any-venue/internal/usecase/list_slots"
)

// ListSlotsQuery query-параметры запроса
type ListSlotsQuery struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	ID                    int64  `json:"id"`
	StartTime             string `json:"start_time"` // "10:00"
	EndTime               string `json:"end_time"`
	IsBooked              bool   `json:"is_booked"`
	IsBookedByCurrentUser bool   `json:"is_booked_by_current_user"`
	Price                 int64  `json:"price"`
}

// ToUseCaseRequest конвертирует запрос в модель use case. Дата уже провалидирована.
func (q *ListSlotsQuery) ToUseCaseRequest(venueID int64, session *domain.Session) (*listSlots.Request, error) {
	req := &listSlots.Request{
		VenueID: venueID,
		Session: session,
	}
	if q.Date == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, q.Date)
	if err != nil {
		return nil, err
	}
	req.Date = &date
	return req, nil
}

// FromUseCaseResponse слоты в виде JSON-массива
func FromUseCaseResponse(resp *listSlots.Response) []SlotResponse {
	out := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		out = append(out, SlotResponse{
			ID:                    s.ID,
			StartTime:             s.StartTime.String(),
			EndTime:               s.EndTime.String(),
			IsBooked:              s.IsBooked,
			IsBookedByCurrentUser: s.IsBookedByCurrentUser,
			Price:                 s.Price,
		})
	}
	return out
}
