package mapper

import (
	"MyStorage/internal/models"
	"time"
)

// ToBox renders a stored box for viewerID; boxes owned by someone else are
// flagged as shared.
func ToBox(box models.StoredBox, viewerID uint) models.Box {
	return models.Box{
		ID:          box.ID,
		Name:        box.Name,
		Description: box.Description,
		Location:    box.Location,
		PhotoURL:    box.PhotoURL,
		QRCode:      box.QRCode,
		OwnerID:     box.OwnerID,
		ItemsCount:  len(box.Items),
		Shared:      box.OwnerID != viewerID,
		Items:       ToItems(box.Items),
	}
}

func ToBoxes(boxes []models.StoredBox, viewerID uint) []models.Box {
	result := make([]models.Box, 0, len(boxes))
	for _, box := range boxes {
		result = append(result, ToBox(box, viewerID))
	}
	return result
}

func ToUser(account models.Account) models.User {
	return models.User{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt.UTC().Format(time.RFC3339),
	}
}
