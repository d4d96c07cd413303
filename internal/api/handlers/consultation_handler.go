package handlers

import (
	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/internal/api/presenters"
	"DermaGlow-Backend/pkg/consultation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ConsultationHandler interface {
		GetDoctors(c *fiber.Ctx) error
		BookConsultation(c *fiber.Ctx) error
		GetBookings(c *fiber.Ctx) error
	}

	consultationHandler struct {
		consultationService consultation.ConsultationService
		validator           *validator.Validate
	}
)

func NewConsultationHandler(consultationService consultation.ConsultationService, validator *validator.Validate) ConsultationHandler {
	return &consultationHandler{
		consultationService: consultationService,
		validator:           validator,
	}
}

func (h *consultationHandler) GetDoctors(c *fiber.Ctx) error {
	doctors, err := h.consultationService.GetDoctors(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDoctors, err)
	}

	return presenters.SuccessResponse(c, doctors, fiber.StatusOK, domain.MessageSuccessGetDoctors)
}

func (h *consultationHandler) BookConsultation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BookConsultationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBookConsultation, err)
	}

	res, err := h.consultationService.BookConsultation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBookConsultation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessBookConsultation)
}

func (h *consultationHandler) GetBookings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	bookings, err := h.consultationService.GetBookings(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBookings, err)
	}

	return presenters.SuccessResponse(c, bookings, fiber.StatusOK, domain.MessageSuccessGetBookings)
}
