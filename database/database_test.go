package database

import (
	"MyStorage/internal/config"
	"MyStorage/internal/models"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSetupDatabase_SqliteFile(t *testing.T) {
	cfg := &config.Configuration{Storage: config.StorageConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "nested", "mystorage.db"),
	}}

	db, cleanup, err := SetupDatabase(cfg, quietLogger())
	require.NoError(t, err)
	defer cleanup()

	assert.True(t, db.Migrator().HasTable(&models.Setting{}))
	assert.FileExists(t, cfg.Storage.Path)
}

func TestSetupDatabase_UnknownDriver(t *testing.T) {
	cfg := &config.Configuration{Storage: config.StorageConfig{Driver: "mysql"}}

	_, _, err := SetupDatabase(cfg, quietLogger())

	assert.EqualError(t, err, `unknown storage driver "mysql"`)
}

func TestSetupDatabase_PostgresNeedsEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "")
	cfg := &config.Configuration{Storage: config.StorageConfig{Driver: "postgres"}}

	_, _, err := SetupDatabase(cfg, quietLogger())

	assert.EqualError(t, err, "DB_HOST environment variable not set")
}

func TestSetupDemoDatabase(t *testing.T) {
	db, err := SetupDemoDatabase()
	require.NoError(t, err)
	defer CloseDatabase(db, quietLogger())

	for _, table := range []interface{}{&models.Account{}, &models.StoredBox{}, &models.StoredItem{}, "box_shares"} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}
