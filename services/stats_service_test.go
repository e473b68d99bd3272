// File: /services/stats_service_test.go
package services

import (
	"fmt"
	"testing"

	"eventdesk-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection to :memory: would see an empty database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.EventParticipant{},
		&models.EventStats{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Name:     "Test User",
		Email:    fmt.Sprintf("%s@example.com", uuid.New().String()[:8]),
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestEvent(t *testing.T, db *gorm.DB, userID, status string) models.Event {
	t.Helper()

	date, err := models.ParseDateOnly("2025-06-01")
	require.NoError(t, err)
	timeOfDay, err := models.ParseTimeOnly("10:00")
	require.NoError(t, err)

	event := models.Event{
		ID:          uuid.New().String(),
		Day:         "Sunday",
		Date:        date,
		Time:        timeOfDay,
		Duration:    60,
		Place:       "Community Hall",
		Status:      status,
		CreatedByID: userID,
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := NewStatsService(db)

	first, err := service.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, models.StatsSingletonID, first.ID)
	assert.Zero(t, first.TotalEvents)

	second, err := service.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.EventStats{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "only one stats row may ever exist")
}

func TestRefreshComputesCounts(t *testing.T) {
	db := setupTestDB(t)
	service := NewStatsService(db)

	creator := createTestUser(t, db)
	e1 := createTestEvent(t, db, creator.ID, models.StatusPending)
	e2 := createTestEvent(t, db, creator.ID, models.StatusPending)
	e3 := createTestEvent(t, db, creator.ID, models.StatusConfirmed)
	createTestEvent(t, db, creator.ID, models.StatusCancelled)

	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	require.NoError(t, db.Create(&models.EventParticipant{EventID: e1.ID, UserID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.EventParticipant{EventID: e2.ID, UserID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.EventParticipant{EventID: e3.ID, UserID: bob.ID}).Error)

	stats, err := service.Refresh()
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalEvents)
	assert.EqualValues(t, 2, stats.PendingEvents)
	assert.EqualValues(t, 1, stats.ConfirmedEvents)
	assert.EqualValues(t, 0, stats.CompletedEvents)
	assert.EqualValues(t, 1, stats.CancelledEvents)
	assert.EqualValues(t, 2, stats.TotalParticipants, "participants are counted per distinct user")
}

func TestRefreshOverwritesPreviousCounts(t *testing.T) {
	db := setupTestDB(t)
	service := NewStatsService(db)
	creator := createTestUser(t, db)

	createTestEvent(t, db, creator.ID, models.StatusPending)
	stats, err := service.Refresh()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalEvents)

	createTestEvent(t, db, creator.ID, models.StatusCompleted)
	stats, err = service.Refresh()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalEvents)
	assert.EqualValues(t, 1, stats.CompletedEvents)

	var count int64
	require.NoError(t, db.Model(&models.EventStats{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
