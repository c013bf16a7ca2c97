package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	profileRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/profile"
)

type transition struct {
	from, to domain.Role
}

// effect удаляет данные, несовместимые с новой ролью
type effect func(s *Service, ctx context.Context, userID int64, res *ChangeRoleResult) error

// Service смена роли профиля с каскадной очисткой
type Service struct {
	profileRepo ProfileRepository
	venueRepo   VenueRepository
	eventRepo   EventRepository
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	reviewRepo  ReviewRepository
	txManager   TransactionManager
	logger      Logger

	effects map[transition]effect
}

func NewService(
	profileRepo ProfileRepository,
	venueRepo VenueRepository,
	eventRepo EventRepository,
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	reviewRepo ReviewRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		profileRepo: profileRepo,
		venueRepo:   venueRepo,
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		reviewRepo:  reviewRepo,
		txManager:   txManager,
		logger:      logger,
		effects: map[transition]effect{
			{domain.RoleOwner, domain.RoleUser}: dropOwnerData,
			{domain.RoleUser, domain.RoleOwner}: dropUserData,
		},
	}
}

// ChangeRole переключает роль профиля. Повторная установка той же роли ничего не меняет.
// OWNER -> USER: удаляются площадки (слоты и бронирования по каскаду) и события.
// USER -> OWNER: удаляются бронирования (слоты освобождаются) и отзывы.
func (s *Service) ChangeRole(ctx context.Context, userID int64, role domain.Role) (*ChangeRoleResult, error) {
	s.logger.Info("ChangeRole: user=%d, role=%s", userID, role)

	role, err := domain.ParseRole(string(role))
	if err != nil {
		return nil, err
	}

	res := &ChangeRoleResult{UserID: userID, To: role}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		*res = ChangeRoleResult{UserID: userID, To: role}

		profile, err := s.profileRepo.GetByID(txCtx, userID)
		if err != nil {
			if errors.Is(err, profileRepo.ErrProfileNotFound) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("%w: ChangeRole - get profile: %v", ErrInternal, err)
		}
		res.From = profile.Role

		if profile.Role == role {
			return nil
		}

		if apply, ok := s.effects[transition{profile.Role, role}]; ok {
			if err := apply(s, txCtx, userID, res); err != nil {
				return fmt.Errorf("%w: ChangeRole - cascade %s->%s: %v", ErrInternal, profile.Role, role, err)
			}
		}

		if err := s.profileRepo.UpdateRole(txCtx, userID, role); err != nil {
			return fmt.Errorf("%w: ChangeRole - update role: %v", ErrInternal, err)
		}
		res.Changed = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			s.logger.Warn("ChangeRole: profile id=%d not found", userID)
		} else {
			s.logger.Error("ChangeRole: failed for user=%d: %v", userID, err)
		}
		return nil, err
	}

	if !res.Changed {
		s.logger.Info("ChangeRole: user=%d already has role %s", userID, role)
		return res, nil
	}

	s.logger.Info("ChangeRole: user=%d %s->%s, venues=%d, events=%d, bookings=%d, reviews=%d",
		userID, res.From, res.To, res.DeletedVenues, res.DeletedEvents, res.DeletedBookings, res.DeletedReviews)
	return res, nil
}

func dropOwnerData(s *Service, ctx context.Context, userID int64, res *ChangeRoleResult) error {
	venues, err := s.venueRepo.DeleteByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete venues: %v", err)
	}
	events, err := s.eventRepo.DeleteByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete events: %v", err)
	}
	res.DeletedVenues = venues
	res.DeletedEvents = events
	return nil
}

func dropUserData(s *Service, ctx context.Context, userID int64, res *ChangeRoleResult) error {
	slotIDs, err := s.bookingRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete bookings: %v", err)
	}
	released, err := s.slotRepo.ReleaseMany(ctx, slotIDs)
	if err != nil {
		return fmt.Errorf("release slots: %v", err)
	}
	reviews, err := s.reviewRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete reviews: %v", err)
	}
	res.DeletedBookings = int64(len(slotIDs))
	res.ReleasedSlots = released
	res.DeletedReviews = reviews
	return nil
}
