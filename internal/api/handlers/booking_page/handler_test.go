package booking_page

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/booking_page/mocks"
	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/service/slots"
	openBookingPage "github.com/pbp-kelompok-b10/any-venue/internal/usecase/open_booking_page"
	"github.com/pbp-kelompok-b10/any-venue/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		venueID    string
		setup      func(m *mocks.BookingPageUseCase)
		wantStatus int
		wantBody   string
	}{
		{
			name:    "success",
			venueID: "3",
			setup: func(m *mocks.BookingPageUseCase) {
				m.On("Execute", mock.Anything, &openBookingPage.Request{VenueID: 3}).Return(&openBookingPage.Response{
					Venue: &domain.Venue{ID: 3, Name: "Futsal Arena", Price: 120000, City: "Jakarta", Type: domain.VenueIndoor},
					Today: today,
					Dates: []time.Time{today, today.AddDate(0, 0, 1)},
					Sweep: &slots.SweepResult{},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: `{
				"venue":{"id":3,"name":"Futsal Arena","price":120000,"city":"Jakarta","category":"","type":"Indoor","address":"","description":"","image_url":""},
				"today":"2025-03-10",
				"dates":["2025-03-10","2025-03-11"]
			}`,
		},
		{
			name:       "invalid venue id",
			venueID:    "0",
			setup:      func(m *mocks.BookingPageUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"некорректный ID площадки"}`,
		},
		{
			name:    "venue not found",
			venueID: "7",
			setup: func(m *mocks.BookingPageUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, openBookingPage.ErrVenueNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"площадка не найдена"}`,
		},
		{
			name:    "sweep failed",
			venueID: "7",
			setup: func(m *mocks.BookingPageUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("tx aborted")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"внутренняя ошибка сервера"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := mocks.NewBookingPageUseCase(t)
			tt.setup(uc)

			r := mux.NewRouter()
			r.HandleFunc("/venues/{venueId}/booking-page", NewHandler(uc, logger.NewDiscard()).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/"+tt.venueID+"/booking-page", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
