package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"voyago/internal/config"
	"voyago/internal/models/db_models"
	"voyago/pkg/logger"
)

func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logger.Errorf("Error connecting to database: %v", err)
		return nil, err
	}

	if err := connectionPool.AutoMigrate(&db_models.Account{}); err != nil {
		logger.Errorf("Error migrating accounts table: %v", err)
		return nil, err
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Errorf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Errorf("Error closing database connection: %v", err)
	} else {
		logger.Infof("PostgreSQL database connection closed")
	}
}
