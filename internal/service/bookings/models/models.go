package models

import (
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

// UserBookingResponse бронирование пользователя вместе со слотом и площадкой
type UserBookingResponse struct {
	BookingID  int64     `json:"booking_id"`
	SlotID     int64     `json:"slot_id"`
	VenueID    int64     `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	Date       string    `json:"date"`       // "2025-10-15"
	StartTime  string    `json:"start_time"` // "10:00"
	EndTime    string    `json:"end_time"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []UserBookingResponse `json:"bookings"`
	Total    int                   `json:"total"`
}

// VenueSummary краткие данные площадки
type VenueSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	City     string `json:"city"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
}

// SlotDetailsResponse слот вместе с площадкой
type SlotDetailsResponse struct {
	ID        int64        `json:"id"`
	Date      string       `json:"date"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	IsBooked  bool         `json:"is_booked"`
	Venue     VenueSummary `json:"venue"`
}

// FromDomainUserBooking конвертирует domain.UserBooking в ответ
func FromDomainUserBooking(b *domain.UserBooking) UserBookingResponse {
	return UserBookingResponse{
		BookingID:  b.BookingID,
		SlotID:     b.SlotID,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		Date:       b.Date.Format(domain.DateFormat),
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainUserBookingList конвертирует список бронирований
func FromDomainUserBookingList(list []*domain.UserBooking) *BookingListResponse {
	out := make([]UserBookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromDomainUserBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// FromDomainVenue конвертирует domain.Venue в краткую карточку
func FromDomainVenue(v *domain.Venue) VenueSummary {
	return VenueSummary{
		ID:       v.ID,
		Name:     v.Name,
		Price:    v.Price,
		City:     v.City,
		Category: v.Category,
		Type:     string(v.Type),
		Address:  v.Address,
		ImageURL: v.ImageURL,
	}
}

// FromDomainSlot собирает детали слота
func FromDomainSlot(s *domain.Slot, v *domain.Venue) *SlotDetailsResponse {
	return &SlotDetailsResponse{
		ID:        s.ID,
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		IsBooked:  s.IsBooked,
		Venue:     FromDomainVenue(v),
	}
}
