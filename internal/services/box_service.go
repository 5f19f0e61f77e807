package services

import (
	"MyStorage/internal/api"
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

type BoxAPI interface {
	GetBoxes(ctx context.Context) ([]models.Box, error)
	GetBox(ctx context.Context, id uint) (*models.Box, error)
	CreateBox(ctx context.Context, box dto.BoxCreateDTO) (*models.Box, error)
	UpdateBox(ctx context.Context, id uint, box dto.BoxUpdateDTO) (*models.Box, error)
	DeleteBox(ctx context.Context, id uint) error
	ShareBox(ctx context.Context, id uint, email string) error
	UnshareBox(ctx context.Context, id uint, userID uint) error
}

type BoxService interface {
	GetBoxes(ctx context.Context) ([]models.Box, error)
	GetBox(ctx context.Context, id uint) (*models.Box, error)
	CreateBox(ctx context.Context, box dto.BoxCreateDTO) (*models.Box, error)
	UpdateBox(ctx context.Context, id uint, box dto.BoxUpdateDTO) (*models.Box, error)
	DeleteBox(ctx context.Context, id uint) error
	ShareBox(ctx context.Context, id uint, email string) error
	UnshareBox(ctx context.Context, id uint, userID uint) error
}

func NewBoxService(client BoxAPI, logService LogService) BoxService {
	return &boxServiceImpl{client: client, logService: logService}
}

type boxServiceImpl struct {
	client     BoxAPI
	logService LogService
}

func (s *boxServiceImpl) GetBoxes(ctx context.Context) ([]models.Box, error) {
	return s.client.GetBoxes(ctx)
}

func (s *boxServiceImpl) GetBox(ctx context.Context, id uint) (*models.Box, error) {
	return s.client.GetBox(ctx, id)
}

// CreateBox requires a name. Fields left out are sent as empty strings.
func (s *boxServiceImpl) CreateBox(ctx context.Context, box dto.BoxCreateDTO) (*models.Box, error) {
	box.Name = strings.TrimSpace(box.Name)
	if box.Name == "" {
		return nil, api.NewValidationError("name", "is required")
	}
	created, err := s.client.CreateBox(ctx, box)
	if err != nil {
		return nil, err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"box": created.ID,
	}).Debug("box created")
	return created, nil
}

func (s *boxServiceImpl) UpdateBox(ctx context.Context, id uint, box dto.BoxUpdateDTO) (*models.Box, error) {
	if box.Name != nil {
		name := strings.TrimSpace(*box.Name)
		if name == "" {
			return nil, api.NewValidationError("name", "cannot be empty")
		}
		box.Name = &name
	}
	return s.client.UpdateBox(ctx, id, box)
}

func (s *boxServiceImpl) DeleteBox(ctx context.Context, id uint) error {
	return s.client.DeleteBox(ctx, id)
}

func (s *boxServiceImpl) ShareBox(ctx context.Context, id uint, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if err := s.client.ShareBox(ctx, id, email); err != nil {
		return err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"box":  id,
		"with": email,
	}).Info("box shared")
	return nil
}

func (s *boxServiceImpl) UnshareBox(ctx context.Context, id uint, userID uint) error {
	return s.client.UnshareBox(ctx, id, userID)
}
