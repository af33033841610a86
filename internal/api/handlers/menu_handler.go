package handlers

import (
	"restaurant-backend/domain"
	"restaurant-backend/internal/api/presenters"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/pkg/menu"

	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenuItems(c *fiber.Ctx) error
		AddMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
		UploadMenuImage(c *fiber.Ctx) error
		GetMenu(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
	}
)

func NewMenuHandler(menuService menu.MenuService) MenuHandler {
	return &menuHandler{
		menuService: menuService,
	}
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	res, err := h.menuService.GetMenuItems(c.Context(), middleware.SessionFrom(c))
	if err != nil {
		return fail(c, domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) AddMenuItem(c *fiber.Ctx) error {
	req := new(domain.MenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.menuService.AddMenuItem(c.Context(), middleware.SessionFrom(c), *req)
	if err != nil {
		return fail(c, domain.MessageFailedAddMenuItem, err)
	}
	return presenters.NoticeResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMenuItem)
}

func (h *menuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	req := new(domain.MenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.menuService.UpdateMenuItem(c.Context(), middleware.SessionFrom(c), c.Params("id"), *req)
	if err != nil {
		return fail(c, domain.MessageFailedUpdateMenuItem, err)
	}
	return presenters.NoticeResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *menuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm", false)

	res, err := h.menuService.DeleteMenuItem(c.Context(), middleware.SessionFrom(c), c.Params("id"), confirmed)
	if err != nil {
		return confirmOrFail(c, domain.MessageConfirmDeleteItem, domain.MessageFailedDeleteMenuItem, err)
	}
	return presenters.NoticeResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}

func (h *menuHandler) UploadMenuImage(c *fiber.Ctx) error {
	req := domain.UploadMenuImageRequest{}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	res, err := h.menuService.UploadMenuImage(c.Context(), middleware.SessionFrom(c), c.Params("id"), req)
	if err != nil {
		return fail(c, domain.MessageFailedUploadImage, err)
	}
	return presenters.NoticeResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

// GetMenu is the public catalog grouped by category.
func (h *menuHandler) GetMenu(c *fiber.Ctx) error {
	res, err := h.menuService.GetCatalog(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenu)
}
