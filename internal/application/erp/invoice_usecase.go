// Package erp generación simulada de facturas desde el ERP (flujo por orden de compra).
package erp

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/domain/cfdi"
)

// ErrInvalidRFC el RFC no cumple la longitud mínima.
var ErrInvalidRFC = errors.New("RFC inválido")

var vatRate = decimal.NewFromFloat(0.16)

// InvoiceUseCase simula la facturación del ERP: valida el RFC, sortea un monto
// y calcula el IVA del 16% sobre él.
type InvoiceUseCase struct {
	mu         sync.Mutex
	rnd        *rand.Rand
	pdfBaseURL string
}

// NewInvoiceUseCase construye el caso de uso; rnd nil usa una semilla por tiempo.
func NewInvoiceUseCase(rnd *rand.Rand, pdfBaseURL string) *InvoiceUseCase {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &InvoiceUseCase{rnd: rnd, pdfBaseURL: pdfBaseURL}
}

// Generate emite la factura simulada para la orden indicada.
func (uc *InvoiceUseCase) Generate(req dto.ERPInvoiceRequest) (dto.ERPInvoiceResponse, error) {
	if len(req.RFC) < cfdi.MinRFCLength {
		return dto.ERPInvoiceResponse{}, ErrInvalidRFC
	}

	uc.mu.Lock()
	invoiceID := fmt.Sprintf("FAC-%06d", 100_000+uc.rnd.Intn(900_000))
	total := decimal.NewFromFloat(500 + uc.rnd.Float64()*2500).Round(2)
	uc.mu.Unlock()

	tax := total.Mul(vatRate).Round(2)

	return dto.ERPInvoiceResponse{
		Success:   true,
		InvoiceID: invoiceID,
		PDFURL:    fmt.Sprintf("%s/%s.pdf", uc.pdfBaseURL, invoiceID),
		Message:   fmt.Sprintf("Factura generada para orden %s", req.OrderID),
		Total:     cfdi.FormatMXN(total),
		Tax:       cfdi.FormatMXN(tax),
	}, nil
}
