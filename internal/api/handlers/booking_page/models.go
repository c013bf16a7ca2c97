package booking_page

import (
	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	openBookingPage "github.com/pbp-kelompok-b10/any-venue/internal/usecase/open_booking_page"
)

// VenueResponse площадка на странице бронирования
type VenueResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// BookingPageResponse HTTP модель страницы бронирования
type BookingPageResponse struct {
	Venue VenueResponse `json:"venue"`
	Today string        `json:"today"`
	Dates []string      `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *openBookingPage.Response) *BookingPageResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	v := resp.Venue
	return &BookingPageResponse{
		Venue: VenueResponse{
			ID:          v.ID,
			Name:        v.Name,
			Price:       v.Price,
			City:        v.City,
			Category:    v.Category,
			Type:        string(v.Type),
			Address:     v.Address,
			Description: v.Description,
			ImageURL:    v.ImageURL,
		},
		Today: resp.Today.Format(domain.DateFormat),
		Dates: dates,
	}
}
