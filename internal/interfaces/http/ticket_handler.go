package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/application/support"
)

// TicketHandler maneja la creación simulada de tickets de soporte.
type TicketHandler struct {
	uc *support.TicketUseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *support.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create crea un ticket de soporte.
// POST /request_create_zendesk_ticket
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, support.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
