package state

import (
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"MyStorage/internal/services"
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type fakeSession struct {
	active bool
}

func (f *fakeSession) Active() bool { return f.active }

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	args := m.Called(ctx, username, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthService) Logout() error {
	args := m.Called()
	return args.Error(0)
}

type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) GetBoxes(ctx context.Context) ([]models.Box, error) {
	args := m.Called(ctx)
	boxes, _ := args.Get(0).([]models.Box)
	return boxes, args.Error(1)
}

func (m *MockBoxService) GetBox(ctx context.Context, id uint) (*models.Box, error) {
	args := m.Called(ctx, id)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) CreateBox(ctx context.Context, box dto.BoxCreateDTO) (*models.Box, error) {
	args := m.Called(ctx, box)
	created, _ := args.Get(0).(*models.Box)
	return created, args.Error(1)
}

func (m *MockBoxService) UpdateBox(ctx context.Context, id uint, box dto.BoxUpdateDTO) (*models.Box, error) {
	args := m.Called(ctx, id, box)
	updated, _ := args.Get(0).(*models.Box)
	return updated, args.Error(1)
}

func (m *MockBoxService) DeleteBox(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoxService) ShareBox(ctx context.Context, id uint, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *MockBoxService) UnshareBox(ctx context.Context, id uint, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) GetItems(ctx context.Context, boxID *uint) ([]models.Item, error) {
	args := m.Called(ctx, boxID)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemService) SearchItems(ctx context.Context, term string, boxID *uint) ([]models.Item, error) {
	args := m.Called(ctx, term, boxID)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemService) CreateItem(ctx context.Context, item dto.ItemCreateDTO) (*models.Item, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(*models.Item)
	return created, args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, id uint, item dto.ItemUpdateDTO) (*models.Item, error) {
	args := m.Called(ctx, id, item)
	updated, _ := args.Get(0).(*models.Item)
	return updated, args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadFile(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

type fixture struct {
	session *fakeSession
	auth    *MockAuthService
	boxes   *MockBoxService
	items   *MockItemService
	uploads *MockUploadService
	c       *Controller
}

func newFixture(active bool) *fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)
	f := &fixture{
		session: &fakeSession{active: active},
		auth:    new(MockAuthService),
		boxes:   new(MockBoxService),
		items:   new(MockItemService),
		uploads: new(MockUploadService),
	}
	f.c = NewController(context.Background(), f.session, f.auth, f.boxes, f.items, f.uploads, services.LogService{Log: log})
	return f
}

// drain runs cmd and every follow-up it produces, feeding results back.
func (f *fixture) drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			f.drain(sub)
		}
		return
	}
	if msg == nil {
		return
	}
	f.drain(f.c.Update(msg))
}

func boxID(id uint) interface{} {
	return mock.MatchedBy(func(got *uint) bool { return got != nil && *got == id })
}
