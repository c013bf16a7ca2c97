package domain

import (
	"time"

	"github.com/pbp-kelompok-b10/any-venue/pkg/types"
)

// Slot one-hour bookable window of a venue on a date
type Slot struct {
	ID        int64
	VenueID   int64
	Date      time.Time // календарная дата, полночь UTC
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBooked  bool
}

// StartsAt returns the instant the slot begins in loc
func (s *Slot) StartsAt(loc *time.Location) time.Time {
	return s.StartTime.On(s.Date, loc)
}

// EndsAt returns the instant the slot ends in loc
func (s *Slot) EndsAt(loc *time.Location) time.Time {
	return s.EndTime.On(s.Date, loc)
}

// IsExpired reports whether the slot window has already closed at now.
// A slot ending exactly at now is expired.
func (s *Slot) IsExpired(now time.Time) bool {
	return !s.EndsAt(now.Location()).After(now)
}

// HasStarted reports whether the slot start is before now
func (s *Slot) HasStarted(now time.Time) bool {
	return s.StartsAt(now.Location()).Before(now)
}
