package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	bookingRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/booking"
)

func TestTxManager_RollbackRestoresState(t *testing.T) {
	ctx := context.Background()
	s := New()
	venueID := s.AddVenue(domain.Venue{Name: "Court A", Price: 100})
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := s.Slots().CreateBatch(ctx, []*domain.Slot{{VenueID: venueID, Date: date, StartTime: "08:00", EndTime: "09:00"}})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.TxManager().DoSerializable(ctx, func(ctx context.Context) error {
		slots, _ := s.Slots().ListByVenueAndDate(ctx, venueID, date)
		require.NoError(t, s.Slots().SetBooked(ctx, slots[0].ID, true))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	slots := s.AllSlots()
	require.Len(t, slots, 1)
	assert.False(t, slots[0].IsBooked)
}

func TestCreateBatch_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	s := New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	in := []*domain.Slot{
		{VenueID: 1, Date: date, StartTime: "08:00", EndTime: "09:00"},
		{VenueID: 1, Date: date, StartTime: "09:00", EndTime: "10:00"},
	}

	n, err := s.Slots().CreateBatch(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.Slots().CreateBatch(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBookingCreate_UniqueSlot(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Bookings().Create(ctx, &domain.Booking{UserID: 1, SlotID: 7, TotalPrice: 10})
	require.NoError(t, err)

	_, err = s.Bookings().Create(ctx, &domain.Booking{UserID: 2, SlotID: 7, TotalPrice: 10})
	assert.ErrorIs(t, err, bookingRepo.ErrBookingExists)
}

func TestVenueDeleteByOwner_Cascades(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := s.AddProfile("owner", domain.RoleOwner)
	other := s.AddProfile("other", domain.RoleOwner)
	mine := s.AddVenue(domain.Venue{OwnerID: owner})
	theirs := s.AddVenue(domain.Venue{OwnerID: other})
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := s.Slots().CreateBatch(ctx, []*domain.Slot{
		{VenueID: mine, Date: date, StartTime: "08:00", EndTime: "09:00"},
		{VenueID: theirs, Date: date, StartTime: "08:00", EndTime: "09:00"},
	})
	require.NoError(t, err)

	mySlots, _ := s.Slots().ListByVenueAndDate(ctx, mine, date)
	_, err = s.Bookings().Create(ctx, &domain.Booking{UserID: 99, SlotID: mySlots[0].ID})
	require.NoError(t, err)

	n, err := s.Venues().DeleteByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Len(t, s.AllSlots(), 1)
	assert.Empty(t, s.AllBookings())
}
