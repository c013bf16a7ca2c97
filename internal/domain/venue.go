package domain

// VenueType indoor or outdoor court
type VenueType string

const (
	VenueIndoor  VenueType = "Indoor"
	VenueOutdoor VenueType = "Outdoor"
)

// Venue bookable court listed by an owner
type Venue struct {
	ID          int64
	OwnerID     int64
	Name        string
	Price       int64 // за один часовой слот
	City        string
	Category    string
	Type        VenueType
	Address     string
	Description string
	ImageURL    string
}
