package list_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/list_slots/mocks"
	"github.com/pbp-kelompok-b10/any-venue/internal/api/middleware"
	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	listSlots "github.com/pbp-kelompok-b10/any-venue/internal/usecase/list_slots"
	"github.com/pbp-kelompok-b10/any-venue/pkg/logger"
)

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/venues/{venueId}/slots", h.Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		url        string
		session    *domain.Session
		setup      func(m *mocks.ListSlotsUseCase)
		wantStatus int
		wantBody   string
	}{
		{
			name: "slots for date",
			url:  "/venues/1/slots?date=2025-03-10",
			setup: func(m *mocks.ListSlotsUseCase) {
				m.On("Execute", mock.Anything, mock.MatchedBy(func(req *listSlots.Request) bool {
					return req.VenueID == 1 && req.Date != nil && req.Date.Equal(day) && req.Session == nil
				})).Return(&listSlots.Response{
					VenueID:   1,
					Date:      day,
					InHorizon: true,
					Slots: []listSlots.Slot{
						{ID: 10, StartTime: "08:00", EndTime: "09:00", Price: 150000},
						{ID: 11, StartTime: "09:00", EndTime: "10:00", IsBooked: true, Price: 150000},
					},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: `[
				{"id":10,"start_time":"08:00","end_time":"09:00","is_booked":false,"is_booked_by_current_user":false,"price":150000},
				{"id":11,"start_time":"09:00","end_time":"10:00","is_booked":true,"is_booked_by_current_user":false,"price":150000}
			]`,
		},
		{
			name:    "session is passed through",
			url:     "/venues/1/slots?date=2025-03-10",
			session: &domain.Session{UserID: 5, Role: domain.RoleUser},
			setup: func(m *mocks.ListSlotsUseCase) {
				m.On("Execute", mock.Anything, mock.MatchedBy(func(req *listSlots.Request) bool {
					return req.Session != nil && req.Session.UserID == 5
				})).Return(&listSlots.Response{
					Slots: []listSlots.Slot{{ID: 10, StartTime: "08:00", EndTime: "09:00", IsBooked: true, IsBookedByCurrentUser: true, Price: 1}},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":10,"start_time":"08:00","end_time":"09:00","is_booked":true,"is_booked_by_current_user":true,"price":1}]`,
		},
		{
			name: "missing date gives empty array",
			url:  "/venues/1/slots",
			setup: func(m *mocks.ListSlotsUseCase) {
				m.On("Execute", mock.Anything, mock.MatchedBy(func(req *listSlots.Request) bool {
					return req.Date == nil
				})).Return(&listSlots.Response{VenueID: 1, Slots: []listSlots.Slot{}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "malformed date",
			url:        "/venues/1/slots?date=10-03-2025",
			setup:      func(m *mocks.ListSlotsUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"некорректные данные запроса","details":{"date":"ожидается формат 2006-01-02"}}`,
		},
		{
			name:       "invalid venue id",
			url:        "/venues/abc/slots?date=2025-03-10",
			setup:      func(m *mocks.ListSlotsUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"некорректный ID площадки"}`,
		},
		{
			name: "venue not found",
			url:  "/venues/99/slots?date=2025-03-10",
			setup: func(m *mocks.ListSlotsUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, listSlots.ErrVenueNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"площадка не найдена"}`,
		},
		{
			name: "internal error",
			url:  "/venues/1/slots?date=2025-03-10",
			setup: func(m *mocks.ListSlotsUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"внутренняя ошибка сервера"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := mocks.NewListSlotsUseCase(t)
			tt.setup(uc)
			h := NewHandler(uc, logger.NewDiscard())

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.session != nil {
				req = req.WithContext(middleware.WithSession(context.Background(), *tt.session))
			}

			rec := serve(h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
