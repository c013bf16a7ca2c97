package broker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosedPublisher(t *testing.T) {
	p := &Publisher{exchange: "any-venue.events"}

	err := p.PublishJSON(context.Background(), KeyBookingCreated, BookingCreated{BookingID: 1})

	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, p.Close())
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.PublishJSON(context.Background(), KeySlotsSwept, SlotsSwept{}))
	assert.NoError(t, p.Close())
}

func TestBookingCreated_JSON(t *testing.T) {
	ev := BookingCreated{
		BookingID:  10,
		UserID:     2,
		SlotID:     5,
		VenueID:    1,
		Date:       "2025-03-10",
		StartTime:  "08:00",
		TotalPrice: 150000,
		OccurredAt: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"booking_id": 10, "user_id": 2, "slot_id": 5, "venue_id": 1,
		"date": "2025-03-10", "start_time": "08:00", "total_price": 150000,
		"occurred_at": "2025-03-09T12:00:00Z"
	}`, string(b))
}
