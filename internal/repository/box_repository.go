package repository

import (
	"MyStorage/internal/models"
	"errors"

	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.StoredBox]
	FindOwned(accountID uint) ([]models.StoredBox, error)
	FindSharedWith(accountID uint) ([]models.StoredBox, error)
	FindWithRelations(id uint) (*models.StoredBox, error)
	Share(box *models.StoredBox, account *models.Account) error
	Unshare(box *models.StoredBox, accountID uint) error
}

type BoxRepositoryImpl struct {
	GenericRepository[models.StoredBox]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl{
		GenericRepository: NewGenericRepository[models.StoredBox](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl) FindOwned(accountID uint) ([]models.StoredBox, error) {
	var boxes []models.StoredBox
	err := r.db.Preload("Items").Where("owner_id = ?", accountID).Order("id").Find(&boxes).Error
	return boxes, err
}

func (r *BoxRepositoryImpl) FindSharedWith(accountID uint) ([]models.StoredBox, error) {
	var boxes []models.StoredBox
	err := r.db.Preload("Items").
		Joins("JOIN box_shares ON box_shares.box_id = boxes.id").
		Where("box_shares.user_id = ?", accountID).
		Order("boxes.id").
		Find(&boxes).Error
	return boxes, err
}

// FindWithRelations returns nil, nil when the box does not exist.
func (r *BoxRepositoryImpl) FindWithRelations(id uint) (*models.StoredBox, error) {
	var box models.StoredBox
	err := r.db.Preload("Items").Preload("SharedWith").First(&box, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepositoryImpl) Share(box *models.StoredBox, account *models.Account) error {
	return r.db.Model(box).Association("SharedWith").Append(account)
}

func (r *BoxRepositoryImpl) Unshare(box *models.StoredBox, accountID uint) error {
	account := models.Account{BaseModel: models.BaseModel{ID: accountID}}
	return r.db.Model(box).Association("SharedWith").Delete(&account)
}
