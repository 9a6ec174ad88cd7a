package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/juguetron/agent-api/internal/application/billing"
	"github.com/juguetron/agent-api/internal/application/dto"
)

// BillingHandler maneja la facturación CFDI del portal.
type BillingHandler struct {
	uc *billing.GenerateInvoiceUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *billing.GenerateInvoiceUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// Generate genera una factura CFDI simulada. Los errores de validación van en
// el cuerpo de la respuesta con success=false; solo una falla de
// infraestructura produce 500.
// POST /generate_cfdi_invoice
func (h *BillingHandler) Generate(c *fiber.Ctx) error {
	var in dto.CFDIInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Generate(in)
	if err != nil {
		log.Error().Err(err).Msg("generación de factura CFDI")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible generar la factura"})
	}
	return c.JSON(resp)
}
