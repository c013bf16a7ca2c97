// Package memstore in-memory implementation of the storage repositories.
// Used by service and use case tests in place of PostgreSQL.
// Test-only: cmd/main.go never wires it, production runs on the PostgreSQL repositories.
package memstore

import (
	"context"
	"sync"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

type state struct {
	slots    map[int64]*domain.Slot
	bookings map[int64]*domain.Booking
	venues   map[int64]*domain.Venue
	profiles map[int64]*domain.Profile
	events   map[int64]int64 // event id -> owner id
	reviews  map[int64]int64 // review id -> user id
	nextID   int64
}

func newState() *state {
	return &state{
		slots:    map[int64]*domain.Slot{},
		bookings: map[int64]*domain.Booking{},
		venues:   map[int64]*domain.Venue{},
		profiles: map[int64]*domain.Profile{},
		events:   map[int64]int64{},
		reviews:  map[int64]int64{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.slots {
		cp := *v
		c.slots[k] = &cp
	}
	for k, v := range s.bookings {
		cp := *v
		c.bookings[k] = &cp
	}
	for k, v := range s.venues {
		cp := *v
		c.venues[k] = &cp
	}
	for k, v := range s.profiles {
		cp := *v
		c.profiles[k] = &cp
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	for k, v := range s.reviews {
		c.reviews[k] = v
	}
	c.nextID = s.nextID
	return c
}

// Store shared state behind all in-memory repositories.
// Transactions are fully serialized: one at a time, rolled back from a snapshot on error.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	st   *state
}

func New() *Store {
	return &Store{st: newState()}
}

func (s *Store) Slots() *SlotRepository       { return &SlotRepository{s: s} }
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }
func (s *Store) Venues() *VenueRepository     { return &VenueRepository{s: s} }
func (s *Store) Profiles() *ProfileRepository { return &ProfileRepository{s: s} }
func (s *Store) Events() *EventRepository     { return &EventRepository{s: s} }
func (s *Store) Reviews() *ReviewRepository   { return &ReviewRepository{s: s} }
func (s *Store) TxManager() *TxManager        { return &TxManager{s: s} }

func (s *Store) nextID() int64 {
	s.st.nextID++
	return s.st.nextID
}

// AddProfile seeds a profile and returns its id
func (s *Store) AddProfile(username string, role domain.Role) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	s.st.profiles[id] = &domain.Profile{ID: id, Username: username, Role: role}
	return id
}

// AddVenue seeds a venue and returns its id
func (s *Store) AddVenue(v domain.Venue) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = s.nextID()
	s.st.venues[v.ID] = &v
	return v.ID
}

// AddEvent seeds an event hosted by ownerID
func (s *Store) AddEvent(ownerID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	s.st.events[id] = ownerID
	return id
}

// AddReview seeds a review written by userID
func (s *Store) AddReview(userID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	s.st.reviews[id] = userID
	return id
}

// AllSlots snapshot of every slot
func (s *Store) AllSlots() []domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Slot, 0, len(s.st.slots))
	for _, v := range s.st.slots {
		out = append(out, *v)
	}
	return out
}

// AllBookings snapshot of every booking
func (s *Store) AllBookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, 0, len(s.st.bookings))
	for _, v := range s.st.bookings {
		out = append(out, *v)
	}
	return out
}

func (s *Store) CountEvents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.events)
}

func (s *Store) CountReviews() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.reviews)
}

type txKey struct{}

// TxManager serializes transactions with a global lock
type TxManager struct {
	s *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	m.s.mu.Lock()
	snapshot := m.s.st.clone()
	m.s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.s.mu.Lock()
		m.s.st = snapshot
		m.s.mu.Unlock()
		return err
	}

	return nil
}
