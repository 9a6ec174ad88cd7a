package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/application/orders"
)

// TrackingHandler maneja el seguimiento simulado de pedidos.
type TrackingHandler struct {
	uc *orders.TrackingUseCase
}

// NewTrackingHandler construye el handler.
func NewTrackingHandler(uc *orders.TrackingUseCase) *TrackingHandler {
	return &TrackingHandler{uc: uc}
}

// Track consulta el estado de un pedido.
// POST /request_order_tracking
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	var in dto.OrderTrackingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id es obligatorio"})
	}
	return c.JSON(h.uc.Track(in))
}
