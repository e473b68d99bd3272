// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password      string    `json:"-" gorm:"not null;size:255"`
	IsAdmin       bool      `json:"is_admin" gorm:"default:false"`
	IsCoordinator bool      `json:"is_coordinator" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	CreatedEvents  []Event            `json:"created_events,omitempty" gorm:"foreignKey:CreatedByID"`
	Participations []EventParticipant `json:"participations,omitempty" gorm:"foreignKey:UserID"`
}

// CanManageEvents reports whether the user may change event statuses.
func (u *User) CanManageEvents() bool {
	return u.IsAdmin || u.IsCoordinator
}
