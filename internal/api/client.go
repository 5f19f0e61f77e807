package api

import (
	"MyStorage/internal/config"
	"MyStorage/internal/dto"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TokenStore is the slice of the session the client needs.
type TokenStore interface {
	Token() string
	Set(token string) error
	Clear() error
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenStore
	log            *logrus.Logger
	maxUploadBytes int64
}

func NewClient(cfg *config.Configuration, httpClient *http.Client, tokens TokenStore, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.API.Timeout > 0 {
		httpClient.Timeout = cfg.API.Timeout
	}
	return &Client{
		baseURL:        cfg.API.BaseURL,
		http:           httpClient,
		tokens:         tokens,
		log:            log,
		maxUploadBytes: cfg.Upload.MaxUploadBytes(),
	}
}

// Request sends body as JSON and decodes a successful response into out.
// Either may be nil.
func (c *Client) Request(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out interface{}) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method":     req.Method,
			"path":       endpoint,
			"request_id": requestID,
			"error":      err.Error(),
		}).Debug("api request failed")
		return fmt.Errorf("%s %s: %w", req.Method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", req.Method, endpoint, err)
	}
	c.log.WithFields(logrus.Fields{
		"method":     req.Method,
		"path":       endpoint,
		"status":     resp.StatusCode,
		"request_id": requestID,
		"duration":   time.Since(started).String(),
	}).Debug("api request")

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(); err != nil {
			c.log.WithFields(logrus.Fields{
				"path":  endpoint,
				"error": err.Error(),
			}).Error("failed to clear session token")
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestFailedError{
			Status:  resp.StatusCode,
			Message: failureMessage(data),
		}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, endpoint, err)
	}
	return nil
}

// failureMessage pulls a string detail out of the error envelope.
func failureMessage(data []byte) string {
	var envelope dto.ErrorDTO
	if err := json.Unmarshal(data, &envelope); err != nil || len(envelope.Detail) == 0 {
		return defaultFailureMessage
	}
	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err != nil || detail == "" {
		return defaultFailureMessage
	}
	return detail
}
