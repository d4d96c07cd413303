package handlers

import (
	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/internal/api/presenters"
	"DermaGlow-Backend/pkg/analysis"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnalysisHandler interface {
		AnalyzeSkin(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService, validator *validator.Validate) AnalysisHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func (h *analysisHandler) AnalyzeSkin(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AnalyzeSkinRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeSkin, domain.ErrNoImageUploaded)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeSkin, err)
	}

	res, err := h.analysisService.AnalyzeSkin(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedAnalyzeSkin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeSkin)
}

func (h *analysisHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.analysisService.GetHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *analysisHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recent, err := h.analysisService.GetRecentAnalyses(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recent_analyses": recent,
	}, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
