// File: /database/database.go
package database

import (
	"fmt"

	"eventdesk-api/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.EventParticipant{},
		&models.EventStats{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for the common list/sort queries
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Nearest-first listing and the date-range filters both hit (date, time)
	if err := db.Exec("CREATE INDEX idx_events_date_time ON events(date, time)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for events date/time: %v\n", err)
	}

	// Recent-events listing orders by creation
	if err := db.Exec("CREATE INDEX idx_events_created_at ON events(created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for events created_at: %v\n", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	password, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	testUsers := []models.User{
		{
			ID:            uuid.New().String(),
			Name:          "Admin User",
			Email:         "admin@example.com",
			Password:      string(password),
			IsAdmin:       true,
			IsCoordinator: true,
		},
		{
			ID:            uuid.New().String(),
			Name:          "Event Coordinator",
			Email:         "coordinator@example.com",
			Password:      string(password),
			IsCoordinator: true,
		},
		{
			ID:       uuid.New().String(),
			Name:     "Regular Member",
			Email:    "member@example.com",
			Password: string(password),
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Email, err)
		}
	}

	fmt.Println("Database seeded with test users")
	return nil
}
