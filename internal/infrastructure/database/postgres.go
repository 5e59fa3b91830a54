package database

import (
	"fmt"
	"strings"

	"github.com/sangkips/leadflow-api/internal/config"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("Connected to PostgreSQL database", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations")

	err := db.AutoMigrate(
		&entity.Staff{},
		&entity.Lead{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed")
	return nil
}

// SeedDefaultData creates the staff members listed in SEED_STAFF
// (comma separated names) when the staff table is empty
func SeedDefaultData(db *gorm.DB, log *zap.Logger) error {
	names := viper.GetStringSlice("SEED_STAFF")
	if len(names) == 1 && strings.Contains(names[0], ",") {
		names = strings.Split(names[0], ",")
	}
	if len(names) == 0 {
		return nil
	}

	var count int64
	if err := db.Model(&entity.Staff{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count staff: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		staff := entity.Staff{Name: name, Active: true}
		if err := db.Create(&staff).Error; err != nil {
			log.Warn("Failed to seed staff member", zap.String("name", name), zap.Error(err))
			continue
		}
		log.Info("Seeded staff member", zap.String("name", name))
	}
	return nil
}
