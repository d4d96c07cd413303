package handlers

import (
	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/internal/api/presenters"
	"DermaGlow-Backend/pkg/product"

	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetProducts(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
	}
)

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &productHandler{productService: productService}
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	skinType := c.Query("skin_type")

	products, err := h.productService.GetProducts(c.Context(), skinType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}
