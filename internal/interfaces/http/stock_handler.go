package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/application/inventory"
)

// StockHandler maneja la verificación simulada de inventario.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Check verifica existencias de un SKU.
// POST /request_stock_check
func (h *StockHandler) Check(c *fiber.Ctx) error {
	var in dto.StockCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku es obligatorio"})
	}
	return c.JSON(h.uc.Check(in))
}
