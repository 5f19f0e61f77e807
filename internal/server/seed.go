package server

import (
	"MyStorage/internal/models"
	"MyStorage/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoEmail     = "demo@mystorage.local"
	DemoPassword  = "demo"
	FriendEmail   = "friend@mystorage.local"
	FriendPassword = "friend"
)

type seedBox struct {
	name        string
	description string
	location    string
	items       []models.StoredItem
}

var demoBoxes = []seedBox{
	{
		name:        "Winter clothes",
		description: "Jackets, scarves and gloves",
		location:    "Bedroom closet",
		items: []models.StoredItem{
			{Name: "Down jacket", Category: string(models.CategoryClothing)},
			{Name: "Wool scarf", Category: string(models.CategoryClothing), Description: "Grey"},
		},
	},
	{
		name:        "Kitchen spare",
		description: "Rarely used kitchenware",
		location:    "Pantry",
		items: []models.StoredItem{
			{Name: "Mug", Category: string(models.CategoryKitchenware)},
			{Name: "Waffle iron", Category: string(models.CategoryElectronics)},
			{Name: "Cookbook", Category: string(models.CategoryBooks)},
		},
	},
	{
		name:     "Tools",
		location: "Garage",
		items: []models.StoredItem{
			{Name: "Drill", Category: string(models.CategoryTools)},
		},
	},
}

// Seed creates the demo account with its boxes, plus a second account to
// share with.
func Seed(accounts repository.AccountRepository, boxes repository.BoxRepository, items repository.ItemRepository) error {
	demo, err := seedAccount(accounts, "demo", DemoEmail, DemoPassword)
	if err != nil {
		return err
	}
	if _, err := seedAccount(accounts, "friend", FriendEmail, FriendPassword); err != nil {
		return err
	}
	for _, seed := range demoBoxes {
		box := models.StoredBox{
			Name:        seed.name,
			Description: seed.description,
			Location:    seed.location,
			QRCode:      uuid.NewString()[:8],
			OwnerID:     demo.ID,
		}
		if err := boxes.Create(&box); err != nil {
			return err
		}
		for _, item := range seed.items {
			item.BoxID = box.ID
			if err := items.Create(&item); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedAccount(accounts repository.AccountRepository, username, email, password string) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	account := models.Account{Username: username, Email: email, PasswordHash: string(hash)}
	if err := accounts.Create(&account); err != nil {
		return nil, err
	}
	return &account, nil
}
