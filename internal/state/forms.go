package state

import (
	"MyStorage/internal/models"
	"strings"
)

type BoxForm struct {
	Name        string
	Description string
	Location    string
	PhotoPath   string
}

type ItemForm struct {
	Name        string
	Description string
	Category    string
	PhotoPath   string
	PhotoURL    string
}

// BoxFormReady gates the box submit action.
func BoxFormReady(form BoxForm) bool {
	return strings.TrimSpace(form.Name) != ""
}

// ItemFormReady gates the item submit action.
func ItemFormReady(form ItemForm) bool {
	return strings.TrimSpace(form.Name) != "" && strings.TrimSpace(form.Category) != ""
}

// ItemFormFrom seeds the edit form.
func ItemFormFrom(item models.Item) ItemForm {
	return ItemForm{
		Name:        item.Name,
		Description: item.Description,
		Category:    models.Category(item.Category).Label(),
		PhotoURL:    item.PhotoURL,
	}
}
