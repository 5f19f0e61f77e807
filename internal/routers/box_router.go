package routers

import (
	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(api fiber.Router, h Handlers) {
	boxes := api.Group("/boxes", h.RequireAuth)
	boxes.Get("/", h.Box.ListBoxes)
	boxes.Post("/", h.Box.CreateBox)
	boxes.Get("/:id", h.Box.GetBox)
	boxes.Put("/:id", h.Box.UpdateBox)
	boxes.Delete("/:id", h.Box.DeleteBox)
	boxes.Post("/:id/share", h.Box.ShareBox)
	boxes.Delete("/:id/share/:userId", h.Box.UnshareBox)
}
