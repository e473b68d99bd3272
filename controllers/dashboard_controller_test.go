// File: /controllers/dashboard_controller_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"eventdesk-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDashboardRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dc := NewDashboardController(db)

	r := gin.New()
	r.GET("/dashboard", dc.GetDashboard)
	r.GET("/stats", dc.GetStats)
	return r
}

func makeDatedEvent(t *testing.T, db *gorm.DB, userID, date, timeOfDay, status string) models.Event {
	t.Helper()

	d, err := models.ParseDateOnly(date)
	require.NoError(t, err)
	tm, err := models.ParseTimeOnly(timeOfDay)
	require.NoError(t, err)

	event := models.Event{
		ID:          uuid.New().String(),
		Day:         "Friday",
		Date:        d,
		Time:        tm,
		Duration:    60,
		Place:       "Community Hall",
		Status:      status,
		CreatedByID: userID,
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

type dashboardPayload struct {
	Stats         models.EventStats `json:"stats"`
	UpcomingEvent *models.Event     `json:"upcoming_event"`
	RecentEvents  []models.Event    `json:"recent_events"`
	TotalUsers    int64             `json:"total_users"`
}

func TestDashboardComposesAllParts(t *testing.T) {
	db := setupTestDB(t)
	r := setupDashboardRouter(db)

	user := createTestUser(t, db, false)
	createTestUser(t, db, false)

	makeDatedEvent(t, db, user.ID, "2020-01-01", "10:00", models.StatusCompleted)
	future := makeDatedEvent(t, db, user.ID, "2099-05-01", "09:00", models.StatusPending)
	makeDatedEvent(t, db, user.ID, "2099-05-01", "19:00", models.StatusConfirmed)

	w := doRequest(r, http.MethodGet, "/dashboard", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload dashboardPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	assert.EqualValues(t, 3, payload.Stats.TotalEvents)
	assert.EqualValues(t, 1, payload.Stats.CompletedEvents)
	require.NotNil(t, payload.UpcomingEvent)
	assert.Equal(t, future.ID, payload.UpcomingEvent.ID)
	assert.Len(t, payload.RecentEvents, 3)
	assert.EqualValues(t, 2, payload.TotalUsers)
}

// With only past events the dashboard still shows the chronologically
// earliest event rather than nothing.
func TestDashboardUpcomingFallbackOnAllPastStore(t *testing.T) {
	db := setupTestDB(t)
	r := setupDashboardRouter(db)

	user := createTestUser(t, db, false)
	earliest := makeDatedEvent(t, db, user.ID, "2018-02-01", "08:00", models.StatusCompleted)
	makeDatedEvent(t, db, user.ID, "2019-07-01", "10:00", models.StatusCompleted)
	makeDatedEvent(t, db, user.ID, "2020-11-01", "12:00", models.StatusCancelled)

	w := doRequest(r, http.MethodGet, "/dashboard", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload dashboardPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	require.NotNil(t, payload.UpcomingEvent, "fallback must surface an event, not null")
	assert.Equal(t, earliest.ID, payload.UpcomingEvent.ID)
}

func TestDashboardRecentEventsCappedAtFive(t *testing.T) {
	db := setupTestDB(t)
	r := setupDashboardRouter(db)

	user := createTestUser(t, db, false)
	for i := 0; i < 7; i++ {
		makeDatedEvent(t, db, user.ID, "2025-03-01", "10:00", models.StatusPending)
	}

	w := doRequest(r, http.MethodGet, "/dashboard", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload dashboardPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Len(t, payload.RecentEvents, 5)
}

func TestStatsEndpointRefreshes(t *testing.T) {
	db := setupTestDB(t)
	r := setupDashboardRouter(db)

	user := createTestUser(t, db, false)
	makeDatedEvent(t, db, user.ID, "2025-03-01", "10:00", models.StatusConfirmed)

	w := doRequest(r, http.MethodGet, "/stats", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.EventStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.TotalEvents)
	assert.EqualValues(t, 1, stats.ConfirmedEvents)

	makeDatedEvent(t, db, user.ID, "2025-04-01", "10:00", models.StatusConfirmed)

	w = doRequest(r, http.MethodGet, "/stats", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 2, stats.TotalEvents)
}
