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

func TestBoxService_CreateBoxNameOnly(t *testing.T) {
	mockAPI := new(MockBoxAPI)
	service := NewBoxService(mockAPI, testLogService())
	ctx := context.Background()

	expected := dto.BoxCreateDTO{Name: "Garage", Description: "", Location: "", PhotoURL: ""}
	mockAPI.On("CreateBox", ctx, expected).Return(&models.Box{ID: 1, Name: "Garage"}, nil)

	box, err := service.CreateBox(ctx, dto.BoxCreateDTO{Name: "  Garage "})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), box.ID)
	mockAPI.AssertExpectations(t)
}

func TestBoxService_CreateBoxRequiresName(t *testing.T) {
	mockAPI := new(MockBoxAPI)
	service := NewBoxService(mockAPI, testLogService())

	_, err := service.CreateBox(context.Background(), dto.BoxCreateDTO{Name: "   ", Location: "Attic"})

	assert.ErrorIs(t, err, api.ErrValidationRejected)
	mockAPI.AssertNotCalled(t, "CreateBox", mock.Anything, mock.Anything)
}

func TestBoxService_UpdateBoxRejectsEmptyName(t *testing.T) {
	mockAPI := new(MockBoxAPI)
	service := NewBoxService(mockAPI, testLogService())
	empty := ""

	_, err := service.UpdateBox(context.Background(), 3, dto.BoxUpdateDTO{Name: &empty})

	assert.ErrorIs(t, err, api.ErrValidationRejected)
	mockAPI.AssertNotCalled(t, "UpdateBox", mock.Anything, mock.Anything, mock.Anything)
}

func TestBoxService_UpdateBoxPassesPartialFields(t *testing.T) {
	mockAPI := new(MockBoxAPI)
	service := NewBoxService(mockAPI, testLogService())
	ctx := context.Background()
	location := "Basement"
	update := dto.BoxUpdateDTO{Location: &location}

	mockAPI.On("UpdateBox", ctx, uint(3), update).Return(&models.Box{ID: 3, Location: location}, nil)

	box, err := service.UpdateBox(ctx, 3, update)

	assert.NoError(t, err)
	assert.Equal(t, "Basement", box.Location)
	mockAPI.AssertExpectations(t)
}

func TestBoxService_ShareBoxValidatesEmail(t *testing.T) {
	mockAPI := new(MockBoxAPI)
	service := NewBoxService(mockAPI, testLogService())
	ctx := context.Background()

	err := service.ShareBox(ctx, 2, "not-an-email")
	assert.ErrorIs(t, err, api.ErrValidationRejected)

	mockAPI.On("ShareBox", ctx, uint(2), "bob@example.com").Return(nil)
	assert.NoError(t, service.ShareBox(ctx, 2, " bob@example.com "))
	mockAPI.AssertExpectations(t)
}

func TestBoxService_GetBoxesPassesThroughErrors(t *testing.T) {
	mockAPI := new(MockBoxAPI)
	service := NewBoxService(mockAPI, testLogService())
	ctx := context.Background()

	mockAPI.On("GetBoxes", ctx).Return([]models.Box(nil), api.ErrUnauthorized)

	_, err := service.GetBoxes(ctx)

	assert.ErrorIs(t, err, api.ErrUnauthorized)
}
