package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/application/search"
)

// SearchHandler maneja las peticiones de búsqueda de productos.
type SearchHandler struct {
	uc *search.UseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *search.UseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Get busca productos y sugerencias.
// GET /search?q=lego
func (h *SearchHandler) Get(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el parámetro q es obligatorio"})
	}
	return c.JSON(h.uc.Search(c.Context(), q))
}

// Post versión POST de la búsqueda, más amigable para agentes: acepta
// termino_busqueda o query en el body y no requiere URL encoding.
// POST /search
func (h *SearchHandler) Post(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	q := strings.TrimSpace(in.TerminoBusqueda)
	if q == "" {
		q = strings.TrimSpace(in.Query)
	}
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "Debe proporcionar 'termino_busqueda' o 'query' en el request body",
		})
	}
	return c.JSON(h.uc.Search(c.Context(), q))
}
