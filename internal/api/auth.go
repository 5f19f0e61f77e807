package api

import (
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var user models.User
	err := c.Request(ctx, http.MethodPost, "/auth/register", dto.RegisterDTO{
		Username: username,
		Email:    email,
		Password: password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login stores the returned access token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.TokenDTO, error) {
	var token dto.TokenDTO
	err := c.Request(ctx, http.MethodPost, "/auth/login", dto.LoginDTO{
		Email:    email,
		Password: password,
	}, &token)
	if err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, &RequestFailedError{Status: http.StatusOK, Message: "login response carried no token"}
	}
	if err := c.tokens.Set(token.AccessToken); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &token, nil
}

func (c *Client) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Request(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout is local only; the server keeps no session state.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}
