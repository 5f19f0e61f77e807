package session

import (
	"MyStorage/internal/models"
	"MyStorage/internal/repository"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSettings(t *testing.T) repository.SettingRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	return repository.NewSettingRepository(db)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func signed(t *testing.T, expires time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(expires),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestNewSession_LoadsStoredToken(t *testing.T) {
	settings := setupSettings(t)
	require.NoError(t, settings.Put(TokenKey, "opaque-token"))

	s, err := NewSession(settings, quietLogger())

	require.NoError(t, err)
	assert.True(t, s.Active())
	assert.Equal(t, "opaque-token", s.Token())
}

func TestNewSession_ClearsExpiredJWT(t *testing.T) {
	settings := setupSettings(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, settings.Put(TokenKey, signed(t, now.Add(-time.Minute))))

	s, err := newSession(settings, quietLogger(), func() time.Time { return now })

	require.NoError(t, err)
	assert.False(t, s.Active())
	_, ok, err := settings.Get(TokenKey)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNewSession_KeepsLiveJWT(t *testing.T) {
	settings := setupSettings(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token := signed(t, now.Add(time.Hour))
	require.NoError(t, settings.Put(TokenKey, token))

	s, err := newSession(settings, quietLogger(), func() time.Time { return now })

	require.NoError(t, err)
	assert.Equal(t, token, s.Token())
}

func TestSession_SetPersistsAndNotifies(t *testing.T) {
	settings := setupSettings(t)
	s, err := NewSession(settings, quietLogger())
	require.NoError(t, err)

	var seen []string
	unsubscribe := s.Subscribe(func(token string) { seen = append(seen, token) })

	require.NoError(t, s.Set("abc"))
	require.NoError(t, s.Set("abc"))
	require.NoError(t, s.Clear())
	unsubscribe()
	require.NoError(t, s.Set("later"))

	assert.Equal(t, []string{"abc", ""}, seen)
	value, ok, err := settings.Get(TokenKey)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "later", value)
}

func TestSession_ClearSurvivesReload(t *testing.T) {
	settings := setupSettings(t)
	s, err := NewSession(settings, quietLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set("abc"))
	require.NoError(t, s.Clear())

	reloaded, err := NewSession(settings, quietLogger())

	require.NoError(t, err)
	assert.False(t, reloaded.Active())
}
