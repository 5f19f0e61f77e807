package api

import (
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"context"
	"fmt"
	"net/http"
)

// GetItems lists every visible item, or only those of boxID when set.
func (c *Client) GetItems(ctx context.Context, boxID *uint) ([]models.Item, error) {
	endpoint := "/items"
	if boxID != nil {
		endpoint = fmt.Sprintf("/items?box_id=%d", *boxID)
	}
	items := make([]models.Item, 0)
	if err := c.Request(ctx, http.MethodGet, endpoint, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateItem(ctx context.Context, item dto.ItemCreateDTO) (*models.Item, error) {
	var created models.Item
	if err := c.Request(ctx, http.MethodPost, "/items", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateItem(ctx context.Context, id uint, item dto.ItemUpdateDTO) (*models.Item, error) {
	var updated models.Item
	if err := c.Request(ctx, http.MethodPut, fmt.Sprintf("/items/%d", id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteItem(ctx context.Context, id uint) error {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil)
}
