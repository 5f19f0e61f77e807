package services

import (
	"MyStorage/internal/models"
	"strings"
)

// FilterItems keeps items whose name or category contains term, ignoring case.
// An empty term keeps everything.
func FilterItems(items []models.Item, term string) []models.Item {
	term = strings.ToLower(strings.TrimSpace(term))
	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if term == "" ||
			strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Category), term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
