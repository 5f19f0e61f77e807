package routers

import (
	"MyStorage/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Box         *handlers.BoxHandler
	Item        *handlers.ItemHandler
	Upload      *handlers.UploadHandler
	RequireAuth fiber.Handler
}

// SetupRoutes mounts the REST surface under /api and serves stored images
// from uploadDir at /uploads.
func SetupRoutes(app *fiber.App, h Handlers, uploadDir string) {
	api := app.Group("/api")
	SetupAuthRouter(api, h)
	SetupBoxRouter(api, h)
	SetupItemRouter(api, h)
	SetupUploadRouter(api, h)
	app.Static("/uploads", uploadDir)
}
