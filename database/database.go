package database

import (
	"MyStorage/internal/config"
	"MyStorage/internal/models"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase opens the local setting store. sqlite is the default; the
// postgres driver reads its connection from the DB_* environment variables.
func SetupDatabase(cfg *config.Configuration, log *logrus.Logger) (*gorm.DB, func(), error) {
	var dialector gorm.Dialector
	switch cfg.Storage.Driver {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0700); err != nil {
			return nil, nil, fmt.Errorf("create storage directory: %w", err)
		}
		dialector = sqlite.Open(cfg.Storage.Path)
	case "postgres":
		dsn, err := postgresDSN()
		if err != nil {
			return nil, nil, err
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, nil, err
	}
	if err = db.AutoMigrate(models.Setting{}); err != nil {
		CloseDatabase(db, log)
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{
		"driver": cfg.Storage.Driver,
	}).Debug("setting store ready")
	return db, func() { CloseDatabase(db, log) }, nil
}

// SetupDemoDatabase opens an in-memory sqlite database holding the demo
// backend records.
func SetupDemoDatabase() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// each pooled connection would see its own empty database
	sqlDB.SetMaxOpenConns(1)
	if err = db.AutoMigrate(models.Account{}, models.StoredBox{}, models.StoredItem{}); err != nil {
		return nil, err
	}
	return db, nil
}

func postgresDSN() (string, error) {
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) != "" {
			continue
		}
		switch envVariable {
		case "DB_SSLMODE":
			if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
				return "", err
			}
		case "DB_TZ":
			if err := os.Setenv("DB_TZ", "UTC"); err != nil {
				return "", err
			}
		default:
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB, log *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithFields(logrus.Fields{"error": err.Error()}).Warn("could not get DB instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithFields(logrus.Fields{"error": err.Error()}).Warn("error closing database")
	}
}
