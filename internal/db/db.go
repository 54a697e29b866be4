package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nayamama/hr-project/internal/config"
	"github.com/nayamama/hr-project/internal/models"
)

func Connect(cfg config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger,
	})
}

// Migrate creates the schema and seeds the reserved administrator role.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Department{},
		&models.Role{},
		&models.Employee{},
		&models.Anchor{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var count int64
	if err := db.Model(&models.Role{}).Where("is_reserved = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("check reserved role: %w", err)
	}
	if count == 0 {
		reserved := models.Role{
			Name:        models.ReservedRoleName,
			Description: "System administrator",
			IsReserved:  true,
		}
		if err := db.Create(&reserved).Error; err != nil {
			return fmt.Errorf("seed reserved role: %w", err)
		}
	}
	return nil
}
