package handlers

import (
	"restaurant-backend/domain"
	"restaurant-backend/internal/api/presenters"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/pkg/featured"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FeaturedHandler interface {
		LoadFeatured(c *fiber.Ctx) error
		GetBoard(c *fiber.Ctx) error
		SelectSlot(c *fiber.Ctx) error
		AssignDish(c *fiber.Ctx) error
		RemoveSlot(c *fiber.Ctx) error
		SaveFeatured(c *fiber.Ctx) error
		ClearFeatured(c *fiber.Ctx) error
		GetPublicFeatured(c *fiber.Ctx) error
	}

	featuredHandler struct {
		featuredService featured.FeaturedService
		validator       *validator.Validate
	}
)

func NewFeaturedHandler(featuredService featured.FeaturedService, validator *validator.Validate) FeaturedHandler {
	return &featuredHandler{
		featuredService: featuredService,
		validator:       validator,
	}
}

func (h *featuredHandler) LoadFeatured(c *fiber.Ctx) error {
	res, err := h.featuredService.LoadFeatured(c.Context(), middleware.SessionFrom(c))
	if err != nil {
		return fail(c, domain.MessageFailedGetFeatured, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLoadFeatured)
}

func (h *featuredHandler) GetBoard(c *fiber.Ctx) error {
	res, err := h.featuredService.GetBoard(c.Context(), middleware.SessionFrom(c))
	if err != nil {
		return fail(c, domain.MessageFailedFeaturedBoard, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLoadFeatured)
}

func (h *featuredHandler) SelectSlot(c *fiber.Ctx) error {
	slot, err := c.ParamsInt("slot")
	if err != nil {
		return fail(c, domain.MessageFailedFeaturedBoard, domain.ErrInvalidSlot)
	}

	res, err := h.featuredService.SelectSlot(c.Context(), middleware.SessionFrom(c), slot)
	if err != nil {
		return fail(c, domain.MessageFailedFeaturedBoard, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSelectSlot)
}

func (h *featuredHandler) AssignDish(c *fiber.Ctx) error {
	req := new(domain.AssignFeaturedRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFeaturedBoard, err)
	}

	res, err := h.featuredService.AssignDish(c.Context(), middleware.SessionFrom(c), *req)
	if err != nil {
		return fail(c, domain.MessageFailedFeaturedBoard, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAssignDish)
}

func (h *featuredHandler) RemoveSlot(c *fiber.Ctx) error {
	slot, err := c.ParamsInt("slot")
	if err != nil {
		return fail(c, domain.MessageFailedFeaturedBoard, domain.ErrInvalidSlot)
	}

	res, err := h.featuredService.RemoveSlot(c.Context(), middleware.SessionFrom(c), slot)
	if err != nil {
		return fail(c, domain.MessageFailedFeaturedBoard, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveSlot)
}

func (h *featuredHandler) SaveFeatured(c *fiber.Ctx) error {
	res, err := h.featuredService.SaveFeatured(c.Context(), middleware.SessionFrom(c))
	if err != nil {
		return fail(c, domain.MessageFailedSaveFeatured, err)
	}
	return presenters.NoticeResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveFeatured)
}

func (h *featuredHandler) ClearFeatured(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm", false)

	res, err := h.featuredService.ClearFeatured(c.Context(), middleware.SessionFrom(c), confirmed)
	if err != nil {
		return confirmOrFail(c, domain.MessageConfirmClear, domain.MessageFailedClearFeatured, err)
	}
	return presenters.NoticeResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearFeatured)
}

func (h *featuredHandler) GetPublicFeatured(c *fiber.Ctx) error {
	res, err := h.featuredService.GetPublicFeatured(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFeatured, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeatured)
}
