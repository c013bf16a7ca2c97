package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/memstore"
	"github.com/pbp-kelompok-b10/any-venue/pkg/logger"
)

func newService(store *memstore.Store) *Service {
	return NewService(store.Bookings(), store.Slots(), store.Venues(), logger.NewDiscard())
}

func TestService_GetUserBookings(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := newService(store)

	venueID := store.AddVenue(domain.Venue{Name: "Futsal Arena", Price: 150000})
	d1 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	d0 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := store.Slots().CreateBatch(ctx, []*domain.Slot{
		{VenueID: venueID, Date: d1, StartTime: "08:00", EndTime: "09:00"},
		{VenueID: venueID, Date: d0, StartTime: "15:00", EndTime: "16:00"},
		{VenueID: venueID, Date: d0, StartTime: "10:00", EndTime: "11:00"},
	})
	require.NoError(t, err)

	for _, sl := range store.AllSlots() {
		_, err := store.Bookings().Create(ctx, &domain.Booking{UserID: 1, SlotID: sl.ID, TotalPrice: 150000})
		require.NoError(t, err)
	}

	got, err := svc.GetUserBookings(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 3, got.Total)
	assert.Equal(t, "2025-03-10", got.Bookings[0].Date)
	assert.Equal(t, "10:00", got.Bookings[0].StartTime)
	assert.Equal(t, "15:00", got.Bookings[1].StartTime)
	assert.Equal(t, "2025-03-11", got.Bookings[2].Date)
	assert.Equal(t, "Futsal Arena", got.Bookings[2].VenueName)

	other, err := svc.GetUserBookings(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, other.Total)
	assert.NotNil(t, other.Bookings)
}

func TestService_GetSlot(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := newService(store)

	venueID := store.AddVenue(domain.Venue{Name: "Court", Price: 90000, Type: domain.VenueIndoor})
	_, err := store.Slots().CreateBatch(ctx, []*domain.Slot{
		{VenueID: venueID, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "08:00", EndTime: "09:00"},
	})
	require.NoError(t, err)
	slotID := store.AllSlots()[0].ID

	got, err := svc.GetSlot(ctx, slotID)
	require.NoError(t, err)
	assert.Equal(t, "08:00", got.StartTime)
	assert.Equal(t, "2025-03-10", got.Date)
	assert.Equal(t, int64(90000), got.Venue.Price)
	assert.Equal(t, "Indoor", got.Venue.Type)

	_, err = svc.GetSlot(ctx, 999)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
