package repository

import (
	"MyStorage/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.StoredItem]
	FindByBoxIDs(boxIDs []uint) ([]models.StoredItem, error)
}

type ItemRepositoryImpl struct {
	GenericRepository[models.StoredItem]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{
		GenericRepository: NewGenericRepository[models.StoredItem](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl) FindByBoxIDs(boxIDs []uint) ([]models.StoredItem, error) {
	items := make([]models.StoredItem, 0)
	if len(boxIDs) == 0 {
		return items, nil
	}
	err := r.db.Where("box_id IN ?", boxIDs).Order("id").Find(&items).Error
	return items, err
}
