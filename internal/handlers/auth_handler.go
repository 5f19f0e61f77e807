package handlers

import (
	"MyStorage/internal/dto"
	"MyStorage/internal/mapper"
	"MyStorage/internal/models"
	"MyStorage/internal/repository"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	accounts repository.AccountRepository
	tokens   *TokenIssuer
	log      *logrus.Logger
}

func NewAuthHandler(accounts repository.AccountRepository, tokens *TokenIssuer, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterDTO
	if err := c.BodyParser(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid input")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Password == "" {
		return detail(c, http.StatusUnprocessableEntity, "username and password are required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "value is not a valid email address")
	}

	exists, err := h.accounts.Exists(req.Email, req.Username)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not register")
	}
	if exists {
		return detail(c, http.StatusBadRequest, "User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not register")
	}
	account := models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.accounts.Create(&account); err != nil {
		return detail(c, http.StatusInternalServerError, "could not register")
	}
	h.log.WithFields(logrus.Fields{
		"account": account.ID,
	}).Debug("account registered")
	return c.JSON(mapper.ToUser(account))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginDTO
	if err := c.BodyParser(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid input")
	}
	account, err := h.accounts.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not log in")
	}
	if account == nil || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return detail(c, http.StatusBadRequest, "Incorrect email or password")
	}
	token, err := h.tokens.Issue(account.ID)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not log in")
	}
	return c.JSON(dto.TokenDTO{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(mapper.ToUser(*currentAccount(c)))
}
