package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	bookingRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/booking"
	profileRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/profile"
	slotRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/slot"
	venueRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/venue"
)

type SlotRepository struct{ s *Store }

func (r *SlotRepository) ExistsForDate(_ context.Context, venueID int64, date time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sl := range r.s.st.slots {
		if sl.VenueID == venueID && sl.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *SlotRepository) CreateBatch(_ context.Context, slots []*domain.Slot) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inserted := 0
	for _, in := range slots {
		if r.exists(in.VenueID, in.Date, in.StartTime.String()) {
			continue
		}
		cp := *in
		cp.ID = r.s.nextID()
		r.s.st.slots[cp.ID] = &cp
		inserted++
	}
	return inserted, nil
}

func (r *SlotRepository) exists(venueID int64, date time.Time, start string) bool {
	for _, sl := range r.s.st.slots {
		if sl.VenueID == venueID && sl.Date.Equal(date) && sl.StartTime.String() == start {
			return true
		}
	}
	return false
}

func (r *SlotRepository) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sl, ok := r.s.st.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *sl
	return &cp, nil
}

func (r *SlotRepository) ListByVenueAndDate(_ context.Context, venueID int64, date time.Time) ([]*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.Slot, 0)
	for _, sl := range r.s.st.slots {
		if sl.VenueID == venueID && sl.Date.Equal(date) {
			cp := *sl
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.IsBefore(out[j].StartTime) })
	return out, nil
}

func (r *SlotRepository) SetBooked(_ context.Context, id int64, booked bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sl, ok := r.s.st.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	sl.IsBooked = booked
	return nil
}

func (r *SlotRepository) ReleaseMany(_ context.Context, ids []int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, id := range ids {
		if sl, ok := r.s.st.slots[id]; ok {
			sl.IsBooked = false
			n++
		}
	}
	return n, nil
}

// DeleteBefore mirrors ON DELETE CASCADE from slots to bookings
func (r *SlotRepository) DeleteBefore(_ context.Context, date time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, sl := range r.s.st.slots {
		if sl.Date.Before(date) {
			r.s.deleteSlotLocked(id)
			n++
		}
	}
	return n, nil
}

func (s *Store) deleteSlotLocked(slotID int64) {
	delete(s.st.slots, slotID)
	for id, b := range s.st.bookings {
		if b.SlotID == slotID {
			delete(s.st.bookings, id)
		}
	}
}

type BookingRepository struct{ s *Store }

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.st.bookings {
		if existing.SlotID == b.SlotID {
			return nil, bookingRepo.ErrBookingExists
		}
	}

	cp := *b
	cp.ID = r.s.nextID()
	cp.CreatedAt = time.Now()
	r.s.st.bookings[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *BookingRepository) GetByUserAndSlot(_ context.Context, userID, slotID int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.st.bookings {
		if b.UserID == userID && b.SlotID == slotID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *BookingRepository) GetBySlotID(_ context.Context, slotID int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.st.bookings {
		if b.SlotID == slotID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *BookingRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.st.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.s.st.bookings, id)
	return nil
}

func (r *BookingRepository) DeleteBySlotID(_ context.Context, slotID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, b := range r.s.st.bookings {
		if b.SlotID == slotID {
			delete(r.s.st.bookings, id)
			n++
		}
	}
	return n, nil
}

func (r *BookingRepository) DeleteBeforeDate(_ context.Context, date time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, b := range r.s.st.bookings {
		if sl, ok := r.s.st.slots[b.SlotID]; ok && sl.Date.Before(date) {
			delete(r.s.st.bookings, id)
			n++
		}
	}
	return n, nil
}

func (r *BookingRepository) DeleteByUser(_ context.Context, userID int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	slotIDs := make([]int64, 0)
	for id, b := range r.s.st.bookings {
		if b.UserID == userID {
			slotIDs = append(slotIDs, b.SlotID)
			delete(r.s.st.bookings, id)
		}
	}
	return slotIDs, nil
}

func (r *BookingRepository) ListBookedSlotIDs(_ context.Context, userID int64, slotIDs []int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wanted := make(map[int64]bool, len(slotIDs))
	for _, id := range slotIDs {
		wanted[id] = true
	}

	out := make([]int64, 0)
	for _, b := range r.s.st.bookings {
		if b.UserID == userID && wanted[b.SlotID] {
			out = append(out, b.SlotID)
		}
	}
	return out, nil
}

func (r *BookingRepository) ListByUser(_ context.Context, userID int64) ([]*domain.UserBooking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.UserBooking, 0)
	for _, b := range r.s.st.bookings {
		if b.UserID != userID {
			continue
		}
		sl := r.s.st.slots[b.SlotID]
		if sl == nil {
			continue
		}
		name := ""
		if v := r.s.st.venues[sl.VenueID]; v != nil {
			name = v.Name
		}
		out = append(out, &domain.UserBooking{
			BookingID:  b.ID,
			SlotID:     sl.ID,
			VenueID:    sl.VenueID,
			VenueName:  name,
			Date:       sl.Date,
			StartTime:  sl.StartTime,
			EndTime:    sl.EndTime,
			TotalPrice: b.TotalPrice,
			CreatedAt:  b.CreatedAt,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime.IsBefore(out[j].StartTime)
	})
	return out, nil
}

type VenueRepository struct{ s *Store }

func (r *VenueRepository) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.st.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *VenueRepository) ListIDs(_ context.Context) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make([]int64, 0, len(r.s.st.venues))
	for id := range r.s.st.venues {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// DeleteByOwner mirrors the cascade: venue -> slots -> bookings
func (r *VenueRepository) DeleteByOwner(_ context.Context, ownerID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, v := range r.s.st.venues {
		if v.OwnerID != ownerID {
			continue
		}
		for slotID, sl := range r.s.st.slots {
			if sl.VenueID == id {
				r.s.deleteSlotLocked(slotID)
			}
		}
		delete(r.s.st.venues, id)
		n++
	}
	return n, nil
}

type ProfileRepository struct{ s *Store }

func (r *ProfileRepository) GetByID(_ context.Context, id int64) (*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.st.profiles[id]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProfileRepository) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.st.profiles[id]
	if !ok {
		return profileRepo.ErrProfileNotFound
	}
	p.Role = role
	return nil
}

type EventRepository struct{ s *Store }

func (r *EventRepository) DeleteByOwner(_ context.Context, ownerID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, owner := range r.s.st.events {
		if owner == ownerID {
			delete(r.s.st.events, id)
			n++
		}
	}
	return n, nil
}

type ReviewRepository struct{ s *Store }

func (r *ReviewRepository) DeleteByUser(_ context.Context, userID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, user := range r.s.st.reviews {
		if user == userID {
			delete(r.s.st.reviews, id)
			n++
		}
	}
	return n, nil
}
