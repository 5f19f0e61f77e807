package routers

import (
	"github.com/gofiber/fiber/v2"
)

func SetupUploadRouter(api fiber.Router, h Handlers) {
	api.Post("/upload", h.RequireAuth, h.Upload.UploadImage)
}
