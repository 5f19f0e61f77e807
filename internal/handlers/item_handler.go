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
)

type ItemHandler struct {
	items repository.ItemRepository
	boxes repository.BoxRepository
}

func NewItemHandler(items repository.ItemRepository, boxes repository.BoxRepository) *ItemHandler {
	return &ItemHandler{items: items, boxes: boxes}
}

// ListItems filters by the box_id query parameter; without it every item the
// caller can reach is returned.
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	account := currentAccount(c)
	if raw := c.Query("box_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return detail(c, http.StatusBadRequest, "invalid box ID")
		}
		box, err := h.boxes.FindWithRelations(uint(id))
		if err != nil {
			return detail(c, http.StatusInternalServerError, "could not list items")
		}
		if box == nil {
			return c.JSON([]models.Item{})
		}
		if !canAccess(box, account.ID) {
			return detail(c, http.StatusForbidden, "Access denied")
		}
		return c.JSON(mapper.ToItems(box.Items))
	}

	owned, err := h.boxes.FindOwned(account.ID)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not list items")
	}
	shared, err := h.boxes.FindSharedWith(account.ID)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not list items")
	}
	ids := make([]uint, 0, len(owned)+len(shared))
	for _, box := range append(owned, shared...) {
		ids = append(ids, box.ID)
	}
	items, err := h.items.FindByBoxIDs(ids)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "could not list items")
	}
	return c.JSON(mapper.ToItems(items))
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.ItemCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(req.Name) == "" {
		return detail(c, http.StatusUnprocessableEntity, "name is required")
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "unknown category")
	}
	if _, ok := h.reachable(c, req.BoxID); !ok {
		return nil
	}
	item := models.StoredItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    string(category),
		PhotoURL:    req.PhotoURL,
		BoxID:       req.BoxID,
	}
	if err := h.items.Create(&item); err != nil {
		return detail(c, http.StatusInternalServerError, "could not create item")
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToItem(item))
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	item, ok := h.reachableItem(c)
	if !ok {
		return nil
	}
	var req dto.ItemUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid input")
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return detail(c, http.StatusUnprocessableEntity, "name must not be empty")
		}
		item.Name = *req.Name
	}
	if req.Category != nil {
		category, ok := models.ParseCategory(*req.Category)
		if !ok {
			return detail(c, http.StatusUnprocessableEntity, "unknown category")
		}
		item.Category = string(category)
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.PhotoURL != nil {
		item.PhotoURL = *req.PhotoURL
	}
	if err := h.items.Update(item); err != nil {
		return detail(c, http.StatusInternalServerError, "could not update item")
	}
	return c.JSON(mapper.ToItem(*item))
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	item, ok := h.reachableItem(c)
	if !ok {
		return nil
	}
	if err := h.items.Delete(item.ID); err != nil {
		return detail(c, http.StatusInternalServerError, "could not delete item")
	}
	return c.JSON(dto.MessageDTO{Message: "Item deleted"})
}

func (h *ItemHandler) reachableItem(c *fiber.Ctx) (*models.StoredItem, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = detail(c, http.StatusBadRequest, "invalid item ID")
		return nil, false
	}
	items, err := h.items.FindWhere("id = ?", uint(id))
	if err != nil {
		_ = detail(c, http.StatusInternalServerError, "could not load item")
		return nil, false
	}
	if len(items) == 0 {
		_ = detail(c, http.StatusNotFound, "Item not found")
		return nil, false
	}
	if _, ok := h.reachable(c, items[0].BoxID); !ok {
		return nil, false
	}
	return &items[0], true
}

// reachable writes the error response itself when it returns false.
func (h *ItemHandler) reachable(c *fiber.Ctx, boxID uint) (*models.StoredBox, bool) {
	box, err := h.boxes.FindWithRelations(boxID)
	if err != nil {
		_ = detail(c, http.StatusInternalServerError, "could not load box")
		return nil, false
	}
	if box == nil {
		_ = detail(c, http.StatusNotFound, "Box not found")
		return nil, false
	}
	if !canAccess(box, currentAccount(c).ID) {
		_ = detail(c, http.StatusForbidden, "Access denied")
		return nil, false
	}
	return box, true
}
