package services

import (
	"MyStorage/internal/api"
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestItemService_CreateItemNormalizesCategory(t *testing.T) {
	mockAPI := new(MockItemAPI)
	service := NewItemService(mockAPI)
	ctx := context.Background()

	expected := dto.ItemCreateDTO{Name: "Mug", Category: "kitchenware", BoxID: 4}
	mockAPI.On("CreateItem", ctx, expected).Return(&models.Item{ID: 9, Name: "Mug", Category: "kitchenware", BoxID: 4}, nil)

	item, err := service.CreateItem(ctx, dto.ItemCreateDTO{Name: "Mug", Category: " Kitchenware", BoxID: 4})

	assert.NoError(t, err)
	assert.Equal(t, uint(9), item.ID)
	mockAPI.AssertExpectations(t)
}

func TestItemService_CreateItemGuards(t *testing.T) {
	mockAPI := new(MockItemAPI)
	service := NewItemService(mockAPI)
	ctx := context.Background()

	cases := []dto.ItemCreateDTO{
		{Name: "", Category: "tools", BoxID: 1},
		{Name: "Drill", Category: "", BoxID: 1},
		{Name: "Drill", Category: "gadgets", BoxID: 1},
		{Name: "Drill", Category: "tools"},
	}
	for _, input := range cases {
		_, err := service.CreateItem(ctx, input)
		assert.ErrorIs(t, err, api.ErrValidationRejected)
	}
	mockAPI.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestItemService_UpdateItemCategory(t *testing.T) {
	mockAPI := new(MockItemAPI)
	service := NewItemService(mockAPI)
	ctx := context.Background()
	label := "BOOKS"
	lowered := "books"

	mockAPI.On("UpdateItem", ctx, uint(5), dto.ItemUpdateDTO{Category: &lowered}).Return(&models.Item{ID: 5, Category: "books"}, nil)

	item, err := service.UpdateItem(ctx, 5, dto.ItemUpdateDTO{Category: &label})

	assert.NoError(t, err)
	assert.Equal(t, "books", item.Category)
	mockAPI.AssertExpectations(t)
}

func TestItemService_SearchItems(t *testing.T) {
	mockAPI := new(MockItemAPI)
	service := NewItemService(mockAPI)
	ctx := context.Background()

	mockAPI.On("GetItems", ctx, (*uint)(nil)).Return([]models.Item{
		{ID: 1, Name: "Shirt", Category: "clothing"},
		{ID: 2, Name: "Mug", Category: "kitchenware"},
	}, nil)

	items, err := service.SearchItems(ctx, "mu", nil)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Mug", items[0].Name)
}

func TestItemService_DeleteItem(t *testing.T) {
	mockAPI := new(MockItemAPI)
	service := NewItemService(mockAPI)
	ctx := context.Background()

	mockAPI.On("DeleteItem", ctx, uint(7)).Return(nil)

	assert.NoError(t, service.DeleteItem(ctx, 7))
	mockAPI.AssertExpectations(t)
}
