// File: /services/stats_service.go
package services

import (
	"errors"

	"eventdesk-api/models"

	"gorm.io/gorm"
)

// StatsService maintains the single cached aggregate-counts record.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// GetOrCreate returns the stats singleton, creating it with zeroed counts if
// none exists. When two requests race on first access, the fixed primary key
// makes the second insert fail; the loser re-reads the winner's row.
func (s *StatsService) GetOrCreate() (*models.EventStats, error) {
	var stats models.EventStats
	err := s.db.First(&stats, "id = ?", models.StatsSingletonID).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats = models.EventStats{ID: models.StatsSingletonID}
	if createErr := s.db.Create(&stats).Error; createErr != nil {
		// Lost the create race, use the row the other request persisted
		if readErr := s.db.First(&stats, "id = ?", models.StatsSingletonID).Error; readErr != nil {
			return nil, createErr
		}
	}
	return &stats, nil
}

// Refresh recomputes every derived count from the current store state and
// overwrites the singleton. No history is kept.
func (s *StatsService) Refresh() (*models.EventStats, error) {
	stats, err := s.GetOrCreate()
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := s.db.Model(&models.Event{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	var participants int64
	if err := s.db.Model(&models.EventParticipant{}).
		Distinct("user_id").
		Count(&participants).Error; err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	stats.TotalEvents = total
	stats.PendingEvents = byStatus[models.StatusPending]
	stats.ConfirmedEvents = byStatus[models.StatusConfirmed]
	stats.CompletedEvents = byStatus[models.StatusCompleted]
	stats.CancelledEvents = byStatus[models.StatusCancelled]
	stats.TotalParticipants = participants

	if err := s.db.Save(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
