package api

import (
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"context"
	"fmt"
	"net/http"
)

func (c *Client) GetBoxes(ctx context.Context) ([]models.Box, error) {
	boxes := make([]models.Box, 0)
	if err := c.Request(ctx, http.MethodGet, "/boxes", nil, &boxes); err != nil {
		return nil, err
	}
	return boxes, nil
}

func (c *Client) GetBox(ctx context.Context, id uint) (*models.Box, error) {
	var box models.Box
	if err := c.Request(ctx, http.MethodGet, fmt.Sprintf("/boxes/%d", id), nil, &box); err != nil {
		return nil, err
	}
	return &box, nil
}

func (c *Client) CreateBox(ctx context.Context, box dto.BoxCreateDTO) (*models.Box, error) {
	var created models.Box
	if err := c.Request(ctx, http.MethodPost, "/boxes", box, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBox(ctx context.Context, id uint, box dto.BoxUpdateDTO) (*models.Box, error) {
	var updated models.Box
	if err := c.Request(ctx, http.MethodPut, fmt.Sprintf("/boxes/%d", id), box, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBox(ctx context.Context, id uint) error {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/boxes/%d", id), nil, nil)
}

func (c *Client) ShareBox(ctx context.Context, id uint, email string) error {
	return c.Request(ctx, http.MethodPost, fmt.Sprintf("/boxes/%d/share", id), dto.ShareDTO{UserEmail: email}, nil)
}

func (c *Client) UnshareBox(ctx context.Context, id uint, userID uint) error {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/boxes/%d/share/%d", id, userID), nil, nil)
}
