package services

import (
	"MyStorage/internal/api"
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"context"
	"fmt"
	"strings"
)

type ItemAPI interface {
	GetItems(ctx context.Context, boxID *uint) ([]models.Item, error)
	CreateItem(ctx context.Context, item dto.ItemCreateDTO) (*models.Item, error)
	UpdateItem(ctx context.Context, id uint, item dto.ItemUpdateDTO) (*models.Item, error)
	DeleteItem(ctx context.Context, id uint) error
}

type ItemService interface {
	GetItems(ctx context.Context, boxID *uint) ([]models.Item, error)
	SearchItems(ctx context.Context, term string, boxID *uint) ([]models.Item, error)
	CreateItem(ctx context.Context, item dto.ItemCreateDTO) (*models.Item, error)
	UpdateItem(ctx context.Context, id uint, item dto.ItemUpdateDTO) (*models.Item, error)
	DeleteItem(ctx context.Context, id uint) error
}

func NewItemService(client ItemAPI) ItemService {
	return &itemServiceImpl{client: client}
}

type itemServiceImpl struct {
	client ItemAPI
}

func (s *itemServiceImpl) GetItems(ctx context.Context, boxID *uint) ([]models.Item, error) {
	return s.client.GetItems(ctx, boxID)
}

func (s *itemServiceImpl) SearchItems(ctx context.Context, term string, boxID *uint) ([]models.Item, error) {
	items, err := s.client.GetItems(ctx, boxID)
	if err != nil {
		return nil, err
	}
	return FilterItems(items, term), nil
}

func (s *itemServiceImpl) CreateItem(ctx context.Context, item dto.ItemCreateDTO) (*models.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, api.NewValidationError("name", "is required")
	}
	category, err := parseCategory(item.Category)
	if err != nil {
		return nil, err
	}
	item.Category = string(category)
	if item.BoxID == 0 {
		return nil, api.NewValidationError("box_id", "is required")
	}
	return s.client.CreateItem(ctx, item)
}

func (s *itemServiceImpl) UpdateItem(ctx context.Context, id uint, item dto.ItemUpdateDTO) (*models.Item, error) {
	if item.Name != nil {
		name := strings.TrimSpace(*item.Name)
		if name == "" {
			return nil, api.NewValidationError("name", "cannot be empty")
		}
		item.Name = &name
	}
	if item.Category != nil {
		category, err := parseCategory(*item.Category)
		if err != nil {
			return nil, err
		}
		value := string(category)
		item.Category = &value
	}
	return s.client.UpdateItem(ctx, id, item)
}

func (s *itemServiceImpl) DeleteItem(ctx context.Context, id uint) error {
	return s.client.DeleteItem(ctx, id)
}

func parseCategory(label string) (models.Category, error) {
	if strings.TrimSpace(label) == "" {
		return "", api.NewValidationError("category", "is required")
	}
	category, ok := models.ParseCategory(label)
	if !ok {
		return "", api.NewValidationError("category", fmt.Sprintf("unknown category %q", label))
	}
	return category, nil
}
