package services

import (
	"MyStorage/internal/api"
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/sirupsen/logrus"
)

type AuthAPI interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*dto.TokenDTO, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
	Logout() error
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout() error
}

func NewAuthService(client AuthAPI, logService LogService) AuthService {
	return &authServiceImpl{client: client, logService: logService}
}

type authServiceImpl struct {
	client     AuthAPI
	logService LogService
}

// Register creates the account and signs straight in with the same credentials.
func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, api.NewValidationError("username", "is required")
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, api.NewValidationError("password", "is required")
	}
	user, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"user": user.Username,
	}).Info("registered")
	if _, err := s.client.Login(ctx, email, password); err != nil {
		return user, fmt.Errorf("login after register: %w", err)
	}
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if password == "" {
		return api.NewValidationError("password", "is required")
	}
	if _, err := s.client.Login(ctx, email, password); err != nil {
		return err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"email": email,
	}).Info("logged in")
	return nil
}

func (s *authServiceImpl) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.client.GetCurrentUser(ctx)
}

func (s *authServiceImpl) Logout() error {
	s.logService.Log.Info("logged out")
	return s.client.Logout()
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", api.NewValidationError("email", "is required")
	}
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return "", api.NewValidationError("email", fmt.Sprintf("%q is not a valid address", email))
	}
	return email, nil
}
