package database

import (
	"fmt"
	"time"

	"vaccination-management/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the key/value connection string understood by the pgx driver.
func DSN(cfg config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)
}

func NewPostgresConnection(cfg config.DBConfig, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(log)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.WithFields(logrus.Fields{
		"host": cfg.Host,
		"name": cfg.Name,
	}).Info("Successfully connected to PostgreSQL database")

	return db, nil
}

func gormLogLevel(log *logrus.Logger) logger.LogLevel {
	if log.IsLevelEnabled(logrus.DebugLevel) {
		return logger.Info
	}
	return logger.Warn
}
