// File: /controllers/dashboard_controller.go
package controllers

import (
	"net/http"

	"eventdesk-api/models"
	"eventdesk-api/repositories"
	"eventdesk-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const recentEventsLimit = 5

type DashboardController struct {
	db           *gorm.DB
	eventRepo    *repositories.EventRepository
	statsService *services.StatsService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		db:           db,
		eventRepo:    repositories.NewEventRepository(db),
		statsService: services.NewStatsService(db),
	}
}

// GetDashboard composes the dashboard payload: fresh stats, the nearest
// upcoming event (falling back to the earliest past event when nothing is
// scheduled), the five most recently created events, and the user count.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	stats, err := dc.statsService.Refresh()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	upcoming, err := dc.eventRepo.UpcomingEvent(models.Today())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch upcoming event"})
		return
	}

	recent, err := dc.eventRepo.RecentEvents(recentEventsLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent events"})
		return
	}

	var totalUsers int64
	if err := dc.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":          stats,
		"upcoming_event": upcoming,
		"recent_events":  recent,
		"total_users":    totalUsers,
	})
}

// GetStats refreshes and returns the aggregate counts on their own.
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.statsService.Refresh()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
