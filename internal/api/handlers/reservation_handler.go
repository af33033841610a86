package handlers

import (
	"restaurant-backend/domain"
	"restaurant-backend/internal/api/presenters"
	"restaurant-backend/pkg/reservation"

	"github.com/gofiber/fiber/v2"
)

type (
	ReservationHandler interface {
		CreateReservation(c *fiber.Ctx) error
		GetTimeOptions(c *fiber.Ctx) error
	}

	reservationHandler struct {
		reservationService reservation.ReservationService
	}
)

func NewReservationHandler(reservationService reservation.ReservationService) ReservationHandler {
	return &reservationHandler{
		reservationService: reservationService,
	}
}

func (h *reservationHandler) CreateReservation(c *fiber.Ctx) error {
	req := new(domain.CreateReservationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.reservationService.Submit(c.Context(), *req)
	if err != nil {
		return fail(c, domain.MessageFailedCreateReservation, err)
	}
	return presenters.NoticeResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReservation)
}

func (h *reservationHandler) GetTimeOptions(c *fiber.Ctx) error {
	res, err := h.reservationService.GetTimeOptions(c.Query("date"))
	if err != nil {
		return fail(c, domain.MessageFailedGetTimeOptions, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTimeOptions)
}
