package mapper

import (
	"MyStorage/internal/models"
)

func ToItem(item models.StoredItem) models.Item {
	return models.Item{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		PhotoURL:    item.PhotoURL,
		BoxID:       item.BoxID,
	}
}

func ToItems(items []models.StoredItem) []models.Item {
	result := make([]models.Item, 0, len(items))
	for _, item := range items {
		result = append(result, ToItem(item))
	}
	return result
}
