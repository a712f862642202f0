package models

import "time"

// UserStatus is the presence state of a directory user.
type UserStatus string

const (
	UserStatusOnline  UserStatus = "online"
	UserStatusAway    UserStatus = "away"
	UserStatusOffline UserStatus = "offline"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusOnline, UserStatusAway, UserStatusOffline:
		return true
	}
	return false
}

// User is an identity directory entry. Entries are created when the
// directory is seeded and are immutable for the session except for
// Status and LastSeen, which change via presence updates.
type User struct {
	ID       string     `json:"id"`
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Role     string     `json:"role"`
	Status   UserStatus `json:"status"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}
