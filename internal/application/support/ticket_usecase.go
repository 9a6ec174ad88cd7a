// Package support creación simulada de tickets de soporte (integración Zendesk).
package support

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/juguetron/agent-api/internal/application/dto"
)

// ErrInvalidCategory la categoría del ticket no pertenece al catálogo.
var ErrInvalidCategory = errors.New("categoría de ticket no válida")

// TicketCategories catálogo cerrado de categorías de soporte.
var TicketCategories = []string{"Producto Dañado", "Reembolso", "Cambio", "General"}

// TicketUseCase simula la creación de tickets asignando prioridad según el
// sentimiento del cliente.
type TicketUseCase struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTicketUseCase construye el caso de uso; rnd nil usa una semilla por tiempo.
func NewTicketUseCase(rnd *rand.Rand) *TicketUseCase {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TicketUseCase{rnd: rnd}
}

// Create registra el ticket. Sentimiento negativo → prioridad High y respuesta
// en 4 horas; positivo → Low y 24 horas; cualquier otro → Medium y 12 horas.
func (uc *TicketUseCase) Create(req dto.CreateTicketRequest) (dto.CreateTicketResponse, error) {
	if !validCategory(req.Category) {
		return dto.CreateTicketResponse{}, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}

	priority, eta := priorityForSentiment(req.Sentiment)

	uc.mu.Lock()
	ticketID := fmt.Sprintf("ZDK-%06d", 100_000+uc.rnd.Intn(900_000))
	uc.mu.Unlock()

	return dto.CreateTicketResponse{
		Success:               true,
		TicketID:              ticketID,
		Message:               fmt.Sprintf("Ticket creado exitosamente para %s", req.Email),
		Priority:              priority,
		EstimatedResponseTime: eta,
	}, nil
}

func validCategory(c string) bool {
	for _, cat := range TicketCategories {
		if c == cat {
			return true
		}
	}
	return false
}

func priorityForSentiment(sentiment string) (priority, eta string) {
	switch strings.ToLower(strings.TrimSpace(sentiment)) {
	case "negativo", "negative":
		return "High", "4 horas"
	case "positivo", "positive":
		return "Low", "24 horas"
	default:
		return "Medium", "12 horas"
	}
}
