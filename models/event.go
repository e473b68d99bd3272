// File: /models/event.go
package models

import (
	"strings"
	"time"
)

// Event status values
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// EventStatuses lists the accepted status values in display order.
var EventStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// IsValidStatus reports whether s is one of the four accepted status values.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// NormalizeStatus lowercases s and falls back to pending when the value is
// not recognized. Used by the spreadsheet import path only; the direct
// status-update endpoint rejects unknown values instead.
func NormalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !IsValidStatus(s) {
		return StatusPending
	}
	return s
}

type Event struct {
	ID                   string    `json:"id" gorm:"primaryKey;size:191"`
	Day                  string    `json:"day" gorm:"not null;size:50"`
	Date                 DateOnly  `json:"date" gorm:"not null;index"`
	Time                 TimeOnly  `json:"time" gorm:"not null"`
	Duration             int       `json:"duration" gorm:"not null;default:0"` // in minutes
	Place                string    `json:"place" gorm:"not null;size:255"`
	NumberOfParticipants int       `json:"number_of_participants" gorm:"not null;default:0"`
	Status               string    `json:"status" gorm:"not null;default:'pending';size:20;index"`
	MeetingTime          *TimeOnly `json:"meeting_time"`
	MeetingDate          *DateOnly `json:"meeting_date"`
	PlaceOfMeeting       string    `json:"place_of_meeting" gorm:"size:255"`
	Vehicle              string    `json:"vehicle" gorm:"size:255"`
	CameraMan            string    `json:"camera_man" gorm:"size:255"`
	ParticipationType    string    `json:"participation_type" gorm:"size:255"`
	EventReason          string    `json:"event_reason" gorm:"size:500"`
	CreatedByID          string    `json:"created_by" gorm:"not null;size:191"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	CreatedBy    User               `json:"creator" gorm:"foreignKey:CreatedByID"`
	Participants []EventParticipant `json:"participants" gorm:"foreignKey:EventID"`
}

// EventParticipant is one user's registration for one event. The composite
// unique index closes the race where two concurrent join requests both pass
// the existence check before either inserts.
type EventParticipant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EventID     string    `json:"event_id" gorm:"not null;size:191;uniqueIndex:uk_event_participants_event_user"`
	UserID      string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_event_participants_event_user"`
	IsConfirmed bool      `json:"is_confirmed" gorm:"default:false"`
	JoinedAt    time.Time `json:"joined_at" gorm:"autoCreateTime"`

	Event Event `json:"-" gorm:"foreignKey:EventID"`
	User  User  `json:"user" gorm:"foreignKey:UserID"`
}
