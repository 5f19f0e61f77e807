package routers

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRouter(api fiber.Router, h Handlers) {
	api.Post("/auth/register", h.Auth.Register)
	api.Post("/auth/login", h.Auth.Login)
	api.Get("/auth/me", h.RequireAuth, h.Auth.Me)
}
