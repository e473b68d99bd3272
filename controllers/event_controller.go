// File: /controllers/event_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"eventdesk-api/models"
	"eventdesk-api/repositories"
	"eventdesk-api/services"
	"eventdesk-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventController struct {
	db           *gorm.DB
	eventRepo    *repositories.EventRepository
	emailService *services.EmailService
}

func NewEventController(db *gorm.DB, emailService *services.EmailService) *EventController {
	return &EventController{
		db:           db,
		eventRepo:    repositories.NewEventRepository(db),
		emailService: emailService,
	}
}

type EventRequest struct {
	Day                  string           `json:"day" binding:"required"`
	Date                 models.DateOnly  `json:"date" binding:"required"`
	Time                 models.TimeOnly  `json:"time" binding:"required"`
	Duration             int              `json:"duration" binding:"min=0"`
	Place                string           `json:"place" binding:"required"`
	NumberOfParticipants int              `json:"number_of_participants" binding:"min=0"`
	Status               string           `json:"status"`
	MeetingTime          *models.TimeOnly `json:"meeting_time"`
	MeetingDate          *models.DateOnly `json:"meeting_date"`
	PlaceOfMeeting       string           `json:"place_of_meeting"`
	Vehicle              string           `json:"vehicle"`
	CameraMan            string           `json:"camera_man"`
	ParticipationType    string           `json:"participation_type"`
	EventReason          string           `json:"event_reason"`
}

// GetEvents lists events, narrowed by any combination of the recognized
// filters and ordered by the requested sort key.
func (ec *EventController) GetEvents(c *gin.Context) {
	filter := repositories.EventFilter{
		Status:    c.Query("status"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Place:     c.Query("place"),
		Day:       c.Query("day"),
		SortBy:    c.DefaultQuery("sort_by", repositories.SortByDateTime),
		SortOrder: c.DefaultQuery("sort_order", "asc"),
	}

	events, err := ec.eventRepo.Query(filter)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	userID := c.GetString("user_id")

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	event := models.Event{
		ID:                   uuid.New().String(),
		Day:                  req.Day,
		Date:                 req.Date,
		Time:                 req.Time,
		Duration:             req.Duration,
		Place:                req.Place,
		NumberOfParticipants: req.NumberOfParticipants,
		Status:               status,
		MeetingTime:          req.MeetingTime,
		MeetingDate:          req.MeetingDate,
		PlaceOfMeeting:       req.PlaceOfMeeting,
		Vehicle:              req.Vehicle,
		CameraMan:            req.CameraMan,
		ParticipationType:    req.ParticipationType,
		EventReason:          req.EventReason,
		CreatedByID:          userID,
	}

	if err := ec.db.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (ec *EventController) GetEvent(c *gin.Context) {
	event, err := ec.eventRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (ec *EventController) UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != "" && !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	// created_by and created_at are immutable, everything else follows the
	// request
	updates := map[string]interface{}{
		"day":                    req.Day,
		"date":                   req.Date,
		"time":                   req.Time,
		"duration":               req.Duration,
		"place":                  req.Place,
		"number_of_participants": req.NumberOfParticipants,
		"meeting_time":           req.MeetingTime,
		"meeting_date":           req.MeetingDate,
		"place_of_meeting":       req.PlaceOfMeeting,
		"vehicle":                req.Vehicle,
		"camera_man":             req.CameraMan,
		"participation_type":     req.ParticipationType,
		"event_reason":           req.EventReason,
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	if err := ec.db.Model(&event).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	updated, err := ec.eventRepo.GetByID(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated event"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (ec *EventController) DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := ec.eventRepo.Delete(eventID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateEventStatus changes an event's status. Unlike the spreadsheet import,
// which normalizes unknown statuses to pending, this endpoint rejects them.
func (ec *EventController) UpdateEventStatus(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	// Only admins and coordinators can update status
	if !(c.GetBool("is_admin") || c.GetBool("is_coordinator")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
		return
	}

	if err := ec.db.Model(&event).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event status"})
		return
	}
	event.Status = req.Status

	// Best effort, never fails the request
	go ec.notifyParticipants(event)

	c.JSON(http.StatusOK, gin.H{
		"message": "Event status updated successfully",
		"event":   event,
	})
}

// notifyParticipants emails everyone who joined the event about the status
// change.
func (ec *EventController) notifyParticipants(event models.Event) {
	if ec.emailService == nil {
		return
	}

	var participants []models.EventParticipant
	if err := ec.db.Preload("User").Where("event_id = ?", event.ID).Find(&participants).Error; err != nil {
		log.Printf("Failed to load participants for notification: %v", err)
		return
	}

	for _, participant := range participants {
		if err := ec.emailService.SendStatusChangeEmail(participant.User.Email, participant.User.Name, &event); err != nil {
			log.Printf("Failed to send status change email to %s: %v", participant.User.Email, err)
		}
	}
}

func (ec *EventController) JoinEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	// Check if already joined
	var existing models.EventParticipant
	if err := ec.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already joined this event"})
		return
	}

	participant := models.EventParticipant{
		EventID:     eventID,
		UserID:      userID,
		IsConfirmed: false,
	}

	if err := ec.db.Create(&participant).Error; err != nil {
		// The unique constraint on (event_id, user_id) catches the race
		// where two join requests both passed the existence check
		if dupErr := ec.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&existing).Error; dupErr == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already joined this event"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join event"})
		return
	}

	var user models.User
	ec.db.First(&user, "id = ?", userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully joined the event",
		"participant": gin.H{
			"id":           participant.ID,
			"user":         user.Name,
			"joined_at":    participant.JoinedAt,
			"is_confirmed": participant.IsConfirmed,
		},
	})
}

func (ec *EventController) LeaveEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var participant models.EventParticipant
	if err := ec.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&participant).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not participating in this event"})
		return
	}

	if err := ec.db.Delete(&participant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave event"})
		return
	}

	utils.SendSuccess(c, "Successfully left the event", nil)
}

// SearchEvents filters by place, day and date range, newest created first.
func (ec *EventController) SearchEvents(c *gin.Context) {
	filter := repositories.EventFilter{
		Place:     c.Query("place"),
		Day:       c.Query("day"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		SortBy:    repositories.SortByCreated,
		SortOrder: "desc",
	}

	events, err := ec.eventRepo.Query(filter)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (ec *EventController) GetEventsByStatus(c *gin.Context) {
	filter := repositories.EventFilter{
		Status:    c.Param("status"),
		SortBy:    repositories.SortByCreated,
		SortOrder: "desc",
	}

	events, err := ec.eventRepo.Query(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// UpcomingEvents lists future events still pending or confirmed, nearest
// first.
func (ec *EventController) UpcomingEvents(c *gin.Context) {
	events, err := ec.eventRepo.UpcomingEvents(models.Today())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch upcoming events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// PastEvents lists events before today, most recent first.
func (ec *EventController) PastEvents(c *gin.Context) {
	events, err := ec.eventRepo.PastEvents(models.Today())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch past events")
		return
	}

	c.JSON(http.StatusOK, events)
}
