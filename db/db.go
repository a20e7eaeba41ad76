package db

import (
	"fmt"

	"bonrecords/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres connection and migrates the key/value table.
func ConnectDB(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if logger != nil {
		logger.Info("database connected")
	}
	return conn, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.KVEntry{})
}
