package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles. Validated at the request
// boundary; internal code can switch on it exhaustively.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgent:
		return true
	}
	return false
}

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password   string     `gorm:"not null" json:"-"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Role       Role       `gorm:"size:20;not null;default:'agent'" json:"role"`
	Properties []Property `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
