package handlers

import (
	"MyStorage/internal/dto"
	"MyStorage/internal/mapper"
	"MyStorage/internal/models"
	"MyStorage/internal/repository"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BoxHandler struct {
	boxes    repository.BoxRepository
	items    repository.ItemRepository
	accounts repository.AccountRepository
	log      *logrus.Logger
}

func NewBoxHandler(
	boxes repository.BoxRepository,
	items repository.ItemRepository,
	accounts repository.AccountRepository,
	log *logrus.Logger,
) *BoxHandler {
	return &BoxHandler{boxes: boxes, items: items, accounts: accounts, log: log}
}

// ListBoxes returns the caller's own boxes followed by those shared with them.
func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	account := currentAccount(c)
	owned, err := h.boxes.FindOwned(account.ID)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not list boxes")
	}
	shared, err := h.boxes.FindSharedWith(account.ID)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not list boxes")
	}
	return c.JSON(mapper.ToBoxes(append(owned, shared...), account.ID))
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req dto.BoxCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(req.Name) == "" {
		return detail(c, http.StatusUnprocessableEntity, "name is required")
	}
	account := currentAccount(c)
	box := models.StoredBox{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		PhotoURL:    req.PhotoURL,
		QRCode:      uuid.NewString()[:8],
		OwnerID:     account.ID,
	}
	if err := h.boxes.Create(&box); err != nil {
		return detail(c, http.StatusInternalServerError, "could not create box")
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToBox(box, account.ID))
}

func (h *BoxHandler) GetBox(c *fiber.Ctx) error {
	box, ok := h.accessibleBox(c, false)
	if !ok {
		return nil
	}
	return c.JSON(mapper.ToBox(*box, currentAccount(c).ID))
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	box, ok := h.accessibleBox(c, true)
	if !ok {
		return nil
	}
	var req dto.BoxUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid input")
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return detail(c, http.StatusUnprocessableEntity, "name must not be empty")
		}
		box.Name = *req.Name
	}
	if req.Description != nil {
		box.Description = *req.Description
	}
	if req.Location != nil {
		box.Location = *req.Location
	}
	if req.PhotoURL != nil {
		box.PhotoURL = *req.PhotoURL
	}
	record := *box
	record.Items = nil
	record.SharedWith = nil
	if err := h.boxes.Update(&record); err != nil {
		return detail(c, http.StatusInternalServerError, "could not update box")
	}
	return c.JSON(mapper.ToBox(*box, currentAccount(c).ID))
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	box, ok := h.accessibleBox(c, true)
	if !ok {
		return nil
	}
	for _, item := range box.Items {
		if err := h.items.Delete(item.ID); err != nil {
			return detail(c, http.StatusInternalServerError, "could not delete box")
		}
	}
	for _, account := range box.SharedWith {
		if err := h.boxes.Unshare(box, account.ID); err != nil {
			return detail(c, http.StatusInternalServerError, "could not delete box")
		}
	}
	if err := h.boxes.Delete(box.ID); err != nil {
		return detail(c, http.StatusInternalServerError, "could not delete box")
	}
	h.log.WithFields(logrus.Fields{
		"box":   box.ID,
		"items": len(box.Items),
	}).Debug("box deleted")
	return c.JSON(dto.MessageDTO{Message: "Box deleted"})
}

func (h *BoxHandler) ShareBox(c *fiber.Ctx) error {
	box, ok := h.accessibleBox(c, true)
	if !ok {
		return nil
	}
	var req dto.ShareDTO
	if err := c.BodyParser(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid input")
	}
	target, err := h.accounts.FindByEmail(strings.TrimSpace(req.UserEmail))
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not share box")
	}
	if target == nil {
		return detail(c, http.StatusNotFound, "User not found")
	}
	if target.ID == box.OwnerID {
		return detail(c, http.StatusBadRequest, "Cannot share a box with its owner")
	}
	for _, account := range box.SharedWith {
		if account.ID == target.ID {
			return detail(c, http.StatusBadRequest, "Already shared")
		}
	}
	if err := h.boxes.Share(box, target); err != nil {
		return detail(c, http.StatusInternalServerError, "could not share box")
	}
	return c.JSON(dto.MessageDTO{Message: "Box shared successfully"})
}

func (h *BoxHandler) UnshareBox(c *fiber.Ctx) error {
	box, ok := h.accessibleBox(c, true)
	if !ok {
		return nil
	}
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid user ID")
	}
	if err := h.boxes.Unshare(box, uint(userID)); err != nil {
		return detail(c, http.StatusInternalServerError, "could not remove access")
	}
	return c.JSON(dto.MessageDTO{Message: "Access removed"})
}

// accessibleBox loads the box named by the id parameter. When it returns
// false the error response has already been written.
func (h *BoxHandler) accessibleBox(c *fiber.Ctx, ownerOnly bool) (*models.StoredBox, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = detail(c, http.StatusBadRequest, "invalid box ID")
		return nil, false
	}
	box, err := h.boxes.FindWithRelations(uint(id))
	if err != nil {
		_ = detail(c, http.StatusInternalServerError, "could not load box")
		return nil, false
	}
	if box == nil {
		_ = detail(c, http.StatusNotFound, "Box not found")
		return nil, false
	}
	account := currentAccount(c)
	if ownerOnly && box.OwnerID != account.ID {
		_ = detail(c, http.StatusForbidden, "Only the owner can change this box")
		return nil, false
	}
	if !canAccess(box, account.ID) {
		_ = detail(c, http.StatusForbidden, "Access denied")
		return nil, false
	}
	return box, true
}

func canAccess(box *models.StoredBox, accountID uint) bool {
	if box.OwnerID == accountID {
		return true
	}
	for _, account := range box.SharedWith {
		if account.ID == accountID {
			return true
		}
	}
	return false
}
