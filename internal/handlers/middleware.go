package handlers

import (
	"MyStorage/internal/models"
	"MyStorage/internal/repository"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const accountKey = "account"

// RequireAuth resolves the bearer token to an account and stores it on the
// request context.
func RequireAuth(tokens *TokenIssuer, accounts repository.AccountRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return detail(c, http.StatusUnauthorized, "Not authenticated")
		}
		id, err := tokens.Parse(token)
		if err != nil {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}
		account, err := accounts.FindByID(id)
		if err != nil {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}
		c.Locals(accountKey, account)
		return c.Next()
	}
}

func currentAccount(c *fiber.Ctx) *models.Account {
	account, _ := c.Locals(accountKey).(*models.Account)
	return account
}

func detail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(map[string]interface{}{"detail": message})
}

// ErrorHandler renders fiber errors in the same envelope as handler failures.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	return detail(c, status, err.Error())
}
