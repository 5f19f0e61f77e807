package repository

import (
	"MyStorage/internal/models"
	"errors"

	"gorm.io/gorm"
)

type AccountRepository interface {
	GenericRepository[models.Account]
	FindByEmail(email string) (*models.Account, error)
	Exists(email, username string) (bool, error)
}

type AccountRepositoryImpl struct {
	GenericRepository[models.Account]
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Account](db),
		db:                db,
	}
}

func (r *AccountRepositoryImpl) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) Exists(email, username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}
