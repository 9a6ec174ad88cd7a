// Package inventory consulta simulada de inventario (servicio híbrido).
package inventory

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/juguetron/agent-api/internal/application/dto"
)

var (
	stockQuantities    = []int{0, 1, 2, 5, 10, 15}
	locationQuantities = []int{0, 1, 2, 3}
	deliveryDays       = []int{1, 2, 3, 5}
)

// StockUseCase simula la consulta de existencias por SKU: cantidades y
// ubicaciones sorteadas, fecha de entrega estimada.
type StockUseCase struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewStockUseCase construye el caso de uso. rnd y now se inyectan para que los
// tests controlen el sorteo y el reloj; nil usa valores por defecto.
func NewStockUseCase(rnd *rand.Rand, now func() time.Time) *StockUseCase {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &StockUseCase{rnd: rnd, now: now}
}

// Check verifica las existencias del SKU solicitado.
func (uc *StockUseCase) Check(req dto.StockCheckRequest) dto.StockCheckResponse {
	// rand.Rand no es seguro para uso concurrente; el sorteo completo va bajo el mutex.
	uc.mu.Lock()
	defer uc.mu.Unlock()

	status := "in_stock"
	if uc.rnd.Float64() <= 0.2 {
		status = "out_of_stock"
	}

	locations := []dto.StockLocation{
		{
			Name:     "Tienda Reforma",
			Address:  "Av. Paseo de la Reforma 222, CDMX",
			Quantity: locationQuantities[uc.rnd.Intn(len(locationQuantities))],
			Distance: fmt.Sprintf("%.1f km", 1+uc.rnd.Float64()*4),
		},
		{
			Name:     "Tienda Santa Fe",
			Address:  "Av. Vasco de Quiroga 3800, CDMX",
			Quantity: locationQuantities[uc.rnd.Intn(len(locationQuantities))],
			Distance: fmt.Sprintf("%.1f km", 3+uc.rnd.Float64()*7),
		},
	}

	days := deliveryDays[uc.rnd.Intn(len(deliveryDays))]

	return dto.StockCheckResponse{
		Success: true,
		Message: fmt.Sprintf("Stock verificado para SKU %s", req.SKU),
		Stock: dto.StockInfo{
			SKU:      req.SKU,
			Quantity: stockQuantities[uc.rnd.Intn(len(stockQuantities))],
			Status:   status,
		},
		AvailableLocations: locations,
		EstimatedDelivery:  uc.now().AddDate(0, 0, days).Format("2006-01-02"),
	}
}
