package profiles

import "github.com/pbp-kelompok-b10/any-venue/internal/domain"

// ChangeRoleResult что было удалено при смене роли
type ChangeRoleResult struct {
	UserID  int64       `json:"user_id"`
	From    domain.Role `json:"from"`
	To      domain.Role `json:"to"`
	Changed bool        `json:"changed"`

	DeletedVenues   int64 `json:"deleted_venues"`
	DeletedEvents   int64 `json:"deleted_events"`
	DeletedBookings int64 `json:"deleted_bookings"`
	ReleasedSlots   int64 `json:"released_slots"`
	DeletedReviews  int64 `json:"deleted_reviews"`
}
