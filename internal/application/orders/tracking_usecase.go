// Package orders seguimiento simulado de pedidos (integración Janis).
package orders

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/juguetron/agent-api/internal/application/dto"
)

var (
	orderStatuses = []string{"En Procesamiento", "Enviado", "En Tránsito", "Entregado", "Out for Delivery"}
	orderLocations = []string{
		"Almacén CDMX",
		"Centro de Distribución Norte",
		"En ruta a destino",
		"Ubicación final",
	}
	trackingDeliveryDays = []int{1, 2, 3}

	// Artículos fijos de demostración.
	orderItems = []dto.OrderItem{
		{Name: "LEGO City Police Station", Quantity: 1, Price: "$899.00 MXN"},
		{Name: "LEGO Harry Potter Mandrágora", Quantity: 1, Price: "$899.50 MXN"},
	}
)

// TrackingUseCase simula la consulta al sistema de logística: estado, ubicación
// actual y fecha estimada de entrega del pedido.
type TrackingUseCase struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewTrackingUseCase construye el caso de uso; rnd y now nil usan valores por defecto.
func NewTrackingUseCase(rnd *rand.Rand, now func() time.Time) *TrackingUseCase {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &TrackingUseCase{rnd: rnd, now: now}
}

// Track devuelve el estado simulado del pedido.
func (uc *TrackingUseCase) Track(req dto.OrderTrackingRequest) dto.OrderTrackingResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	days := trackingDeliveryDays[uc.rnd.Intn(len(trackingDeliveryDays))]

	return dto.OrderTrackingResponse{
		OrderID:           req.OrderID,
		Status:            orderStatuses[uc.rnd.Intn(len(orderStatuses))],
		EstimatedDelivery: now.AddDate(0, 0, days).Format("2006-01-02"),
		CurrentLocation:   orderLocations[uc.rnd.Intn(len(orderLocations))],
		LastUpdate:        now.Format("2006-01-02 15:04:05"),
		Items:             orderItems,
		TrackingNumber:    fmt.Sprintf("JUG%08d", 10_000_000+uc.rnd.Intn(90_000_000)),
	}
}
