package domain

import "time"

// User represents a dashboard user.
type User struct {
	ID     string
	Email  string
	Name   string
	Role   UserRole
	Avatar *string
}

// HasRole reports whether the user holds one of the given roles.
// An empty role list admits everyone.
func (u *User) HasRole(roles ...UserRole) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Session binds an opaque token to a user until ExpiresAt.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired returns true once now reaches ExpiresAt.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
