package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role role of a profile
type Role string

const (
	RoleUser  Role = "USER"
	RoleOwner Role = "OWNER"
)

var ErrInvalidRole = errors.New("domain: invalid role")

// ParseRole accepts "USER" or "OWNER" in any case
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleOwner:
		return RoleOwner, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Profile account of the marketplace
type Profile struct {
	ID       int64
	Username string
	Role     Role
}

// Session authenticated caller. Role is always set.
type Session struct {
	UserID int64
	Role   Role
}

// NewSession validates the role before building a session
func NewSession(userID int64, role string) (Session, error) {
	if userID <= 0 {
		return Session{}, fmt.Errorf("domain: invalid user id %d", userID)
	}
	r, err := ParseRole(role)
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: userID, Role: r}, nil
}

func (s Session) IsUser() bool  { return s.Role == RoleUser }
func (s Session) IsOwner() bool { return s.Role == RoleOwner }
