package repository

import (
	"MyStorage/internal/models"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository is the durable key/value store backing the session.
type SettingRepository interface {
	GenericRepository[models.Setting]
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Remove(key string) error
}

type SettingRepositoryImpl struct {
	GenericRepository[models.Setting]
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &SettingRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Setting](db),
		db:                db,
	}
}

func (r *SettingRepositoryImpl) Get(key string) (string, bool, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return setting.Value, true, nil
}

func (r *SettingRepositoryImpl) Put(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// Remove hard deletes so the unique key can be written again.
func (r *SettingRepositoryImpl) Remove(key string) error {
	return r.db.Unscoped().Where("key = ?", key).Delete(&models.Setting{}).Error
}
