package slots

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/infra/broker"
	"github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/memstore"
	"github.com/pbp-kelompok-b10/any-venue/pkg/logger"
	"github.com/pbp-kelompok-b10/any-venue/pkg/metrics"
)

var jakarta = time.FixedZone("WIB", 7*3600)

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func newHorizon(t *testing.T, store *memstore.Store, pub EventPublisher) *Horizon {
	t.Helper()

	var m *metrics.Metrics
	gen, err := NewGenerator(store.Slots(), DefaultTemplate, m, logger.NewDiscard())
	require.NoError(t, err)

	return NewHorizon(gen, store.Slots(), store.Bookings(), store.Venues(), store.TxManager(),
		pub, m, logger.NewDiscard(), DefaultWindow)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerator_GenerateSlots(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	var m *metrics.Metrics
	gen, err := NewGenerator(store.Slots(), DefaultTemplate, m, logger.NewDiscard())
	require.NoError(t, err)

	day := date(2025, 3, 10)

	created, err := gen.GenerateSlots(ctx, 1, day)
	require.NoError(t, err)
	assert.Equal(t, 14, created)

	again, err := gen.GenerateSlots(ctx, 1, day)
	require.NoError(t, err)
	assert.Equal(t, 0, again)

	slots, err := store.Slots().ListByVenueAndDate(ctx, 1, day)
	require.NoError(t, err)
	require.Len(t, slots, 14)
	assert.Equal(t, "08:00", slots[0].StartTime.String())
	assert.Equal(t, "09:00", slots[0].EndTime.String())
	assert.Equal(t, "21:00", slots[13].StartTime.String())
	assert.Equal(t, "22:00", slots[13].EndTime.String())
	for _, s := range slots {
		assert.False(t, s.IsBooked)
	}
}

func TestGenerator_SkipsDayWithAnySlot(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	var m *metrics.Metrics
	gen, err := NewGenerator(store.Slots(), DefaultTemplate, m, logger.NewDiscard())
	require.NoError(t, err)

	day := date(2025, 3, 10)
	_, err = store.Slots().CreateBatch(ctx, []*domain.Slot{{VenueID: 1, Date: day, StartTime: "12:00", EndTime: "13:00"}})
	require.NoError(t, err)

	created, err := gen.GenerateSlots(ctx, 1, day)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Len(t, store.AllSlots(), 1)
}

func TestTemplate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    Template
		wantErr bool
	}{
		{"default", DefaultTemplate, false},
		{"single hour", Template{StartHour: 10, EndHour: 11}, false},
		{"empty range", Template{StartHour: 10, EndHour: 10}, true},
		{"inverted", Template{StartHour: 22, EndHour: 8}, true},
		{"negative start", Template{StartHour: -1, EndHour: 8}, true},
		{"last slot 22-23", Template{StartHour: 8, EndHour: 23}, false},
		{"past midnight", Template{StartHour: 8, EndHour: 24}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tmpl.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTemplate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHorizon_EnsureSlotsForDate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 10, 30, 0, 0, jakarta)

	tests := []struct {
		name      string
		date      time.Time
		wantIn    bool
		wantSlots int
	}{
		{"yesterday", date(2025, 3, 9), false, 0},
		{"today", date(2025, 3, 10), true, 14},
		{"last day of horizon", date(2025, 4, 9), true, 14},
		{"beyond horizon", date(2025, 4, 10), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			h := newHorizon(t, store, broker.NoopPublisher{})

			in, err := h.EnsureSlotsForDate(ctx, 1, tt.date, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIn, in)
			assert.Len(t, store.AllSlots(), tt.wantSlots)
		})
	}
}

func TestHorizon_Reconcile(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	h := newHorizon(t, store, broker.NoopPublisher{})
	day := date(2025, 3, 10)

	_, err := h.EnsureSlotsForDate(ctx, 1, day, time.Date(2025, 3, 10, 7, 0, 0, 0, jakarta))
	require.NoError(t, err)

	slots, err := store.Slots().ListByVenueAndDate(ctx, 1, day)
	require.NoError(t, err)

	// 08:00-09:00 забронирован и к 10:30 уже истёк
	expired := slots[0]
	require.NoError(t, store.Slots().SetBooked(ctx, expired.ID, true))
	_, err = store.Bookings().Create(ctx, &domain.Booking{UserID: 5, SlotID: expired.ID, TotalPrice: 100})
	require.NoError(t, err)

	// 11:00-12:00 забронирован и остаётся активным
	upcoming := slots[3]
	require.NoError(t, store.Slots().SetBooked(ctx, upcoming.ID, true))
	_, err = store.Bookings().Create(ctx, &domain.Booking{UserID: 5, SlotID: upcoming.ID, TotalPrice: 100})
	require.NoError(t, err)

	now := time.Date(2025, 3, 10, 10, 30, 0, 0, jakarta)
	active, err := h.Reconcile(ctx, 1, day, now)
	require.NoError(t, err)

	// 08-09 и 09-10 истекли, 10-11 идёт
	require.Len(t, active, 12)
	assert.Equal(t, "10:00", active[0].StartTime.String())

	bookings := store.AllBookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, upcoming.ID, bookings[0].SlotID)

	released, err := store.Slots().GetByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.False(t, released.IsBooked)
}

func TestHorizon_Sweep(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	pub := &recordingPublisher{}
	h := newHorizon(t, store, pub)

	v1 := store.AddVenue(domain.Venue{Name: "A", Price: 100})
	v2 := store.AddVenue(domain.Venue{Name: "B", Price: 200})

	yesterday := date(2025, 3, 9)
	_, err := store.Slots().CreateBatch(ctx, []*domain.Slot{{VenueID: v1, Date: yesterday, StartTime: "08:00", EndTime: "09:00", IsBooked: true}})
	require.NoError(t, err)
	old, err := store.Slots().ListByVenueAndDate(ctx, v1, yesterday)
	require.NoError(t, err)
	_, err = store.Bookings().Create(ctx, &domain.Booking{UserID: 9, SlotID: old[0].ID, TotalPrice: 100})
	require.NoError(t, err)

	now := time.Date(2025, 3, 10, 0, 30, 0, 0, jakarta)
	res, err := h.Sweep(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.PurgedSlots)
	assert.Equal(t, int64(1), res.PurgedBookings)
	assert.Equal(t, 2, res.Venues)
	assert.Equal(t, 2*7*14, res.GeneratedSlots)
	assert.Empty(t, store.AllBookings())
	assert.Equal(t, []string{broker.KeySlotsSwept}, pub.keys)

	for _, v := range []int64{v1, v2} {
		last, err := store.Slots().ListByVenueAndDate(ctx, v, date(2025, 3, 16))
		require.NoError(t, err)
		assert.Len(t, last, 14)

		none, err := store.Slots().ListByVenueAndDate(ctx, v, date(2025, 3, 17))
		require.NoError(t, err)
		assert.Empty(t, none)
	}

	// повторный sweep ничего не создаёт
	res, err = h.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, res.GeneratedSlots)
	assert.Zero(t, res.PurgedSlots)
}

func TestHorizon_Sweep_ReleasesEndedSlotsOfToday(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	h := newHorizon(t, store, broker.NoopPublisher{})
	venueID := store.AddVenue(domain.Venue{Name: "A", Price: 100})
	day := date(2025, 3, 10)

	_, err := h.EnsureSlotsForDate(ctx, venueID, day, time.Date(2025, 3, 10, 7, 0, 0, 0, jakarta))
	require.NoError(t, err)

	slots, err := store.Slots().ListByVenueAndDate(ctx, venueID, day)
	require.NoError(t, err)

	// 08:00-09:00 забронирован, к полудню закончился, но чтения дня не было
	booked := slots[0]
	require.Equal(t, "08:00", booked.StartTime.String())
	require.NoError(t, store.Slots().SetBooked(ctx, booked.ID, true))
	_, err = store.Bookings().Create(ctx, &domain.Booking{UserID: 5, SlotID: booked.ID, TotalPrice: 100})
	require.NoError(t, err)

	res, err := h.Sweep(ctx, time.Date(2025, 3, 10, 12, 0, 0, 0, jakarta))
	require.NoError(t, err)

	assert.Equal(t, 1, res.ReleasedBookings)
	assert.Zero(t, res.PurgedSlots)
	assert.Empty(t, store.AllBookings())

	got, err := store.Slots().GetByID(ctx, booked.ID)
	require.NoError(t, err)
	assert.False(t, got.IsBooked)
}
