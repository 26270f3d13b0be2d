package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// AccountAgeDays feeds the cold-start relaxation in template matching.
func (u *User) AccountAgeDays(now time.Time) int {
	return int(now.Sub(u.CreatedAt).Hours() / 24)
}
