// File: /repositories/event_repository.go
package repositories

import (
	"errors"
	"fmt"

	"eventdesk-api/models"

	"gorm.io/gorm"
)

// ErrInvalidDate marks a malformed date literal in a range bound. It is a
// client input error, not a store failure.
var ErrInvalidDate = errors.New("invalid date")

// Recognized sort keys
const (
	SortByDateTime = "date_time"
	SortByDate     = "date"
	SortByTime     = "time"
	SortByCreated  = "created"
)

// EventFilter holds the recognized filter and sort options for event listing.
// Zero-valued criteria impose no constraint.
type EventFilter struct {
	Status    string
	StartDate string
	EndDate   string
	Place     string
	Day       string
	SortBy    string
	SortOrder string
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Query returns the events matching the conjunction of the supplied criteria,
// sorted per the filter's sort options.
func (r *EventRepository) Query(filter EventFilter) ([]models.Event, error) {
	query := r.db.Model(&models.Event{}).Preload("CreatedBy")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.StartDate != "" {
		start, err := models.ParseDateOnly(filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date: %v", ErrInvalidDate, err)
		}
		query = query.Where("date >= ?", start)
	}

	if filter.EndDate != "" {
		end, err := models.ParseDateOnly(filter.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date: %v", ErrInvalidDate, err)
		}
		query = query.Where("date <= ?", end)
	}

	if filter.Place != "" {
		query = query.Where("LOWER(place) LIKE LOWER(?)", "%"+filter.Place+"%")
	}

	if filter.Day != "" {
		query = query.Where("LOWER(day) LIKE LOWER(?)", "%"+filter.Day+"%")
	}

	var events []models.Event
	if err := query.Order(orderClause(filter.SortBy, filter.SortOrder)).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// orderClause resolves the sort key and direction. Anything unrecognized
// falls back to nearest-first (date asc, time asc).
func orderClause(sortBy, sortOrder string) string {
	dir := "asc"
	if sortOrder == "desc" {
		dir = "desc"
	}

	switch sortBy {
	case SortByDateTime:
		return fmt.Sprintf("date %s, time %s", dir, dir)
	case SortByDate:
		return "date " + dir
	case SortByTime:
		return "time " + dir
	case SortByCreated:
		return "created_at " + dir
	default:
		return "date asc, time asc"
	}
}

// GetByID loads one event with its creator and participants.
func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("CreatedBy").Preload("Participants.User").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// UpcomingEvent returns the nearest event on or after today. When no future
// event exists, it falls back to the chronologically earliest event overall,
// so a dashboard over an all-past store still shows something. Returns nil
// when the store is empty.
func (r *EventRepository) UpcomingEvent(today models.DateOnly) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("CreatedBy").
		Where("date >= ?", today).
		Order("date asc, time asc").
		First(&event).Error
	if err == nil {
		return &event, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.db.Preload("CreatedBy").Order("date asc, time asc").First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// RecentEvents returns the most recently created events, newest first.
func (r *EventRepository) RecentEvents(limit int) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("CreatedBy").
		Order("created_at desc").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// UpcomingEvents returns future events that are still pending or confirmed,
// nearest first.
func (r *EventRepository) UpcomingEvents(today models.DateOnly) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("CreatedBy").
		Where("date >= ?", today).
		Where("status IN ?", []string{models.StatusPending, models.StatusConfirmed}).
		Order("date asc, time asc").
		Find(&events).Error
	return events, err
}

// PastEvents returns events before today, most recent first.
func (r *EventRepository) PastEvents(today models.DateOnly) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("CreatedBy").
		Where("date < ?", today).
		Order("date desc, time desc").
		Find(&events).Error
	return events, err
}

// CreateBatch persists all events inside one transaction. Either every event
// is committed or none of them are.
func (r *EventRepository) CreateBatch(events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range events {
			if err := tx.Create(&events[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an event and its participant rows in one transaction.
func (r *EventRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.EventParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, "id = ?", id).Error
	})
}
