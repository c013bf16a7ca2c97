package bookings

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/slot"
	venueRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/venue"
	"github.com/pbp-kelompok-b10/any-venue/internal/service/bookings/models"
)

// Service сервис чтения бронирований и слотов
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// GetUserBookings получает бронирования пользователя, отсортированные по дате и времени
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainUserBookingList(bookings), nil
}

// GetSlot получает слот вместе с данными площадки
func (s *Service) GetSlot(ctx context.Context, slotID int64) (*models.SlotDetailsResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetSlot: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetSlot: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetSlot - slot repository error: %v", ErrInternal, err)
	}

	venue, err := s.venueRepo.GetByID(ctx, slot.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetSlot: venue id=%d of slot id=%d not found", slot.VenueID, slotID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetSlot: repository error for venue id=%d: %v", slot.VenueID, err)
		return nil, fmt.Errorf("%w: GetSlot - venue repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot, venue), nil
}
