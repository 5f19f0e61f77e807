package handlers

import (
	"MyStorage/internal/dto"
	"MyStorage/internal/helpers"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	dir      string
	maxBytes int64
	log      *logrus.Logger
}

func NewUploadHandler(dir string, maxBytes int64, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{dir: dir, maxBytes: maxBytes, log: log}
}

func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Invalid file")
	}
	if !strings.HasPrefix(fileHeader.Header.Get(fiber.HeaderContentType), "image/") {
		return detail(c, http.StatusBadRequest, "Only images allowed")
	}
	if fileHeader.Size > h.maxBytes {
		return detail(c, http.StatusRequestEntityTooLarge, "File too large")
	}
	name, sum, err := helpers.SaveUpload(fileHeader, h.dir)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not store file")
	}
	h.log.WithFields(logrus.Fields{
		"name":   name,
		"sha256": sum,
		"size":   fileHeader.Size,
	}).Debug("image stored")
	return c.JSON(dto.UploadResultDTO{URL: "/uploads/" + name})
}
