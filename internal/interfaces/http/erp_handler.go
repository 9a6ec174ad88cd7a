package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/application/erp"
)

// ERPInvoiceHandler maneja la generación simulada de facturas del ERP.
type ERPInvoiceHandler struct {
	uc *erp.InvoiceUseCase
}

// NewERPInvoiceHandler construye el handler.
func NewERPInvoiceHandler(uc *erp.InvoiceUseCase) *ERPInvoiceHandler {
	return &ERPInvoiceHandler{uc: uc}
}

// Generate genera una factura a partir de una orden.
// POST /request_invoice_generation
func (h *ERPInvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.ERPInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Generate(in)
	if err != nil {
		if errors.Is(err, erp.ErrInvalidRFC) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "RFC inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
