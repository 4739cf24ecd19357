package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shadowme_backend/internal/config"
	"shadowme_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens (once) the GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey so repositories can detect them portably.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model. The unique
// indexes on student_profiles.user_id, business_profiles.user_id and
// (student_profile_id, opportunity_id) are part of the contract: the profile
// upsert and the duplicate-application check rely on them under concurrency.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.StudentProfile{},
		&models.BusinessProfile{},
		&models.Opportunity{},
		&models.Application{},
		&models.Message{},
	)
}
