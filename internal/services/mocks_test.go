package services

import (
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func testLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	args := m.Called(ctx, username, email, password)
	user, ok := args.Get(0).(*models.User)
	if !ok {
		return nil, args.Error(1)
	}
	return user, args.Error(1)
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*dto.TokenDTO, error) {
	args := m.Called(ctx, email, password)
	token, ok := args.Get(0).(*dto.TokenDTO)
	if !ok {
		return nil, args.Error(1)
	}
	return token, args.Error(1)
}

func (m *MockAuthAPI) GetCurrentUser(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	user, ok := args.Get(0).(*models.User)
	if !ok {
		return nil, args.Error(1)
	}
	return user, args.Error(1)
}

func (m *MockAuthAPI) Logout() error {
	args := m.Called()
	return args.Error(0)
}

type MockBoxAPI struct {
	mock.Mock
}

func (m *MockBoxAPI) GetBoxes(ctx context.Context) ([]models.Box, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Box), args.Error(1)
}

func (m *MockBoxAPI) GetBox(ctx context.Context, id uint) (*models.Box, error) {
	args := m.Called(ctx, id)
	box, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxAPI) CreateBox(ctx context.Context, box dto.BoxCreateDTO) (*models.Box, error) {
	args := m.Called(ctx, box)
	created, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return created, args.Error(1)
}

func (m *MockBoxAPI) UpdateBox(ctx context.Context, id uint, box dto.BoxUpdateDTO) (*models.Box, error) {
	args := m.Called(ctx, id, box)
	updated, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return updated, args.Error(1)
}

func (m *MockBoxAPI) DeleteBox(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoxAPI) ShareBox(ctx context.Context, id uint, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *MockBoxAPI) UnshareBox(ctx context.Context, id uint, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockItemAPI struct {
	mock.Mock
}

func (m *MockItemAPI) GetItems(ctx context.Context, boxID *uint) ([]models.Item, error) {
	args := m.Called(ctx, boxID)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemAPI) CreateItem(ctx context.Context, item dto.ItemCreateDTO) (*models.Item, error) {
	args := m.Called(ctx, item)
	created, ok := args.Get(0).(*models.Item)
	if !ok {
		return nil, args.Error(1)
	}
	return created, args.Error(1)
}

func (m *MockItemAPI) UpdateItem(ctx context.Context, id uint, item dto.ItemUpdateDTO) (*models.Item, error) {
	args := m.Called(ctx, id, item)
	updated, ok := args.Get(0).(*models.Item)
	if !ok {
		return nil, args.Error(1)
	}
	return updated, args.Error(1)
}

func (m *MockItemAPI) DeleteItem(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUploadAPI struct {
	mock.Mock
}

func (m *MockUploadAPI) UploadImage(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error) {
	args := m.Called(ctx, name, contentType, r, size)
	return args.String(0), args.Error(1)
}
