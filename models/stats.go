// File: /models/stats.go
package models

import (
	"time"
)

// StatsSingletonID is the fixed primary key of the single EventStats row.
// The primary key constraint is what keeps the table single-row when two
// requests race on first access.
const StatsSingletonID uint = 1

// EventStats is a single persisted record of cached aggregate counts,
// recomputed in full on every refresh.
type EventStats struct {
	ID                uint      `json:"-" gorm:"primaryKey"`
	TotalEvents       int64     `json:"total_events"`
	PendingEvents     int64     `json:"pending_events"`
	ConfirmedEvents   int64     `json:"confirmed_events"`
	CompletedEvents   int64     `json:"completed_events"`
	CancelledEvents   int64     `json:"cancelled_events"`
	TotalParticipants int64     `json:"total_participants"`
	UpdatedAt         time.Time `json:"last_updated"`
}
