package services

import (
	"MyStorage/internal/helpers"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

type UploadAPI interface {
	UploadImage(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error)
}

type UploadService interface {
	UploadFile(ctx context.Context, path string) (string, error)
}

func NewUploadService(client UploadAPI, logService LogService) UploadService {
	return &uploadServiceImpl{client: client, logService: logService}
}

type uploadServiceImpl struct {
	client     UploadAPI
	logService LogService
}

// UploadFile sends a local image and returns the URL the server stored it under.
func (s *uploadServiceImpl) UploadFile(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	contentType, err := helpers.DetectContentType(path)
	if err != nil {
		return "", err
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	url, err := s.client.UploadImage(ctx, filepath.Base(path), contentType, file, info.Size())
	if err != nil {
		return "", err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"file": filepath.Base(path),
		"size": humanize.IBytes(uint64(info.Size())),
		"url":  url,
	}).Info("image uploaded")
	return url, nil
}
