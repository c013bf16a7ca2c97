package create_booking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/create_booking/mocks"
	"github.com/pbp-kelompok-b10/any-venue/internal/api/middleware"
	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	createBooking "github.com/pbp-kelompok-b10/any-venue/internal/usecase/create_booking"
	"github.com/pbp-kelompok-b10/any-venue/pkg/logger"
)

var user = domain.Session{UserID: 5, Role: domain.RoleUser}

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		session    *domain.Session
		setup      func(m *mocks.CreateBookingUseCase)
		wantStatus int
		wantBody   string
	}{
		{
			name:    "all booked",
			body:    `{"slot_ids":[1,2]}`,
			session: &user,
			setup: func(m *mocks.CreateBookingUseCase) {
				m.On("Execute", mock.Anything, &createBooking.Request{Session: user, SlotIDs: []int64{1, 2}}).
					Return(&createBooking.Response{CreatedBookingIDs: []int64{10, 11}, TotalPrice: 300}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"created_booking_ids":[10,11],"total_price":300,"failures":[]}`,
		},
		{
			name:    "partial success is still created",
			body:    `{"slot_ids":[1,2]}`,
			session: &user,
			setup: func(m *mocks.CreateBookingUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{
					CreatedBookingIDs: []int64{10},
					TotalPrice:        150,
					Failures:          []createBooking.Failure{{SlotID: 2, Err: createBooking.ErrSlotAlreadyBooked}},
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"created_booking_ids":[10],"total_price":150,"failures":[{"slot_id":2,"reason":"conflict"}]}`,
		},
		{
			name:    "empty list",
			body:    `{"slot_ids":[]}`,
			session: &user,
			setup: func(m *mocks.CreateBookingUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"created_booking_ids":[],"total_price":0,"failures":[]}`,
		},
		{
			name:    "only conflicts",
			body:    `{"slot_ids":[2]}`,
			session: &user,
			setup: func(m *mocks.CreateBookingUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{
					Failures: []createBooking.Failure{{SlotID: 2, Err: createBooking.ErrSlotAlreadyBooked}},
				}, nil).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"created_booking_ids":[],"total_price":0,"failures":[{"slot_id":2,"reason":"conflict"}]}`,
		},
		{
			name:    "first failure decides status",
			body:    `{"slot_ids":[7,2]}`,
			session: &user,
			setup: func(m *mocks.CreateBookingUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{
					Failures: []createBooking.Failure{
						{SlotID: 7, Err: createBooking.ErrSlotNotFound},
						{SlotID: 2, Err: createBooking.ErrSlotInPast},
					},
				}, nil).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody: `{"created_booking_ids":[],"total_price":0,"failures":[
				{"slot_id":7,"reason":"not_found"},{"slot_id":2,"reason":"slot_in_past"}]}`,
		},
		{
			name:    "slot in past",
			body:    `{"slot_ids":[2]}`,
			session: &user,
			setup: func(m *mocks.CreateBookingUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{
					Failures: []createBooking.Failure{{SlotID: 2, Err: createBooking.ErrSlotInPast}},
				}, nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"created_booking_ids":[],"total_price":0,"failures":[{"slot_id":2,"reason":"slot_in_past"}]}`,
		},
		{
			name:    "owner is forbidden",
			body:    `{"slot_ids":[1]}`,
			session: &domain.Session{UserID: 9, Role: domain.RoleOwner},
			setup: func(m *mocks.CreateBookingUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"бронировать слоты могут только пользователи"}`,
		},
		{
			name:       "non positive id",
			body:       `{"slot_ids":[0]}`,
			session:    &user,
			setup:      func(m *mocks.CreateBookingUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"некорректные данные запроса","details":{"slot_ids[0]":"должно быть больше 0"}}`,
		},
		{
			name:       "missing slot_ids",
			body:       `{}`,
			session:    &user,
			setup:      func(m *mocks.CreateBookingUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"некорректные данные запроса","details":{"slot_ids":"обязательное поле"}}`,
		},
		{
			name:       "broken json",
			body:       `{"slot_ids":`,
			session:    &user,
			setup:      func(m *mocks.CreateBookingUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"некорректное тело запроса"}`,
		},
		{
			name:       "anonymous",
			body:       `{"slot_ids":[1]}`,
			setup:      func(m *mocks.CreateBookingUseCase) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"требуется авторизация"}`,
		},
		{
			name:    "internal",
			body:    `{"slot_ids":[1]}`,
			session: &user,
			setup: func(m *mocks.CreateBookingUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"внутренняя ошибка сервера"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := mocks.NewCreateBookingUseCase(t)
			tt.setup(uc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			if tt.session != nil {
				req = req.WithContext(middleware.WithSession(req.Context(), *tt.session))
			}
			rec := httptest.NewRecorder()

			NewHandler(uc, logger.NewDiscard()).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
