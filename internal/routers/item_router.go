package routers

import (
	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(api fiber.Router, h Handlers) {
	items := api.Group("/items", h.RequireAuth)
	items.Get("/", h.Item.ListItems)
	items.Post("/", h.Item.CreateItem)
	items.Put("/:id", h.Item.UpdateItem)
	items.Delete("/:id", h.Item.DeleteItem)
}
