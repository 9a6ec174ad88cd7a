package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/application/inventory"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newUseCase(seed int64) *inventory.StockUseCase {
	return inventory.NewStockUseCase(rand.New(rand.NewSource(seed)), func() time.Time { return fixedNow })
}

// TestCheck_RespuestaBienFormada la respuesta trae mensaje con el SKU, estado
// dentro del catálogo y las dos tiendas de demostración.
func TestCheck_RespuestaBienFormada(t *testing.T) {
	uc := newUseCase(1)

	resp := uc.Check(dto.StockCheckRequest{SKU: "LEGO-60316", ZipCode: "06600"})

	assert.True(t, resp.Success)
	assert.Equal(t, "Stock verificado para SKU LEGO-60316", resp.Message)
	assert.Equal(t, "LEGO-60316", resp.Stock.SKU)
	assert.Contains(t, []string{"in_stock", "out_of_stock"}, resp.Stock.Status)
	assert.Contains(t, []int{0, 1, 2, 5, 10, 15}, resp.Stock.Quantity)

	require.Len(t, resp.AvailableLocations, 2)
	assert.Equal(t, "Tienda Reforma", resp.AvailableLocations[0].Name)
	assert.Equal(t, "Tienda Santa Fe", resp.AvailableLocations[1].Name)
}

// TestCheck_EntregaEstimadaDesdeElReloj la fecha estimada sale del reloj
// inyectado más un plazo del catálogo de días.
func TestCheck_EntregaEstimadaDesdeElReloj(t *testing.T) {
	uc := newUseCase(1)

	resp := uc.Check(dto.StockCheckRequest{SKU: "LEGO-60316"})

	want := []string{
		fixedNow.AddDate(0, 0, 1).Format("2006-01-02"),
		fixedNow.AddDate(0, 0, 2).Format("2006-01-02"),
		fixedNow.AddDate(0, 0, 3).Format("2006-01-02"),
		fixedNow.AddDate(0, 0, 5).Format("2006-01-02"),
	}
	assert.Contains(t, want, resp.EstimatedDelivery)
}

// TestCheck_MismaSemillaMismoSorteo con la misma semilla el resultado es
// reproducible.
func TestCheck_MismaSemillaMismoSorteo(t *testing.T) {
	first := newUseCase(7).Check(dto.StockCheckRequest{SKU: "BAR-123"})
	second := newUseCase(7).Check(dto.StockCheckRequest{SKU: "BAR-123"})

	assert.Equal(t, first, second)
}
