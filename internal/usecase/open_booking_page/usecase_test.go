package open_booking_page

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/infra/broker"
	"github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/memstore"
	"github.com/pbp-kelompok-b10/any-venue/internal/service/slots"
	"github.com/pbp-kelompok-b10/any-venue/pkg/logger"
	"github.com/pbp-kelompok-b10/any-venue/pkg/metrics"
)

var wib = time.FixedZone("WIB", 7*3600)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newUseCase(t *testing.T, store *memstore.Store, now time.Time) *UseCase {
	t.Helper()

	var m *metrics.Metrics
	log := logger.NewDiscard()
	gen, err := slots.NewGenerator(store.Slots(), slots.DefaultTemplate, m, log)
	require.NoError(t, err)
	horizon := slots.NewHorizon(gen, store.Slots(), store.Bookings(), store.Venues(), store.TxManager(),
		broker.NoopPublisher{}, m, log, slots.DefaultWindow)

	uc := NewUseCase(store.Venues(), horizon, slots.DefaultWindow.PrefetchDays, wib, log)
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func TestOpenBookingPage_CleansOldSlots(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	venueID := store.AddVenue(domain.Venue{Name: "Court", Price: 100000})
	user := store.AddProfile("user", domain.RoleUser)

	yesterday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err := store.Slots().CreateBatch(ctx, []*domain.Slot{{VenueID: venueID, Date: yesterday, StartTime: "10:00", EndTime: "11:00"}})
	require.NoError(t, err)
	old := store.AllSlots()[0]
	_, err = store.Bookings().Create(ctx, &domain.Booking{UserID: user, SlotID: old.ID, TotalPrice: 100000})
	require.NoError(t, err)

	uc := newUseCase(t, store, time.Date(2025, 3, 10, 12, 0, 0, 0, wib))
	resp, err := uc.Execute(ctx, &Request{VenueID: venueID})
	require.NoError(t, err)

	assert.Equal(t, "Court", resp.Venue.Name)
	require.Len(t, resp.Dates, 7)
	assert.Equal(t, "2025-03-10", resp.Dates[0].Format(domain.DateFormat))
	assert.Equal(t, "2025-03-16", resp.Dates[6].Format(domain.DateFormat))
	assert.Equal(t, int64(1), resp.Sweep.PurgedSlots)
	assert.Equal(t, 7*14, resp.Sweep.GeneratedSlots)

	_, err = store.Slots().GetByID(ctx, old.ID)
	assert.Error(t, err)
	assert.Empty(t, store.AllBookings())
}

func TestOpenBookingPage_UnknownVenue(t *testing.T) {
	store := memstore.New()
	uc := newUseCase(t, store, time.Date(2025, 3, 10, 12, 0, 0, 0, wib))

	_, err := uc.Execute(context.Background(), &Request{VenueID: 1})
	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.Empty(t, store.AllSlots())
}
