package billing

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/domain/cfdi"
)

// MsgValidationError mensaje de la respuesta cuando la solicitud no pasa validación.
const MsgValidationError = "Error de validación"

// Config URLs y prefijos de la facturación.
type Config struct {
	PDFBaseURL string
	SATBaseURL string
}

// GenerateInvoiceUseCase flujo completo de facturación CFDI simulada.
type GenerateInvoiceUseCase struct {
	allocator *cfdi.FolioAllocator
	stamper   Stamper
	cfg       Config
	now       func() time.Time
}

// NewGenerateInvoiceUseCase construye el caso de uso. now permite inyectar un
// reloj fijo en tests; nil usa time.Now.
func NewGenerateInvoiceUseCase(allocator *cfdi.FolioAllocator, stamper Stamper, cfg Config, now func() time.Time) *GenerateInvoiceUseCase {
	if now == nil {
		now = time.Now
	}
	return &GenerateInvoiceUseCase{allocator: allocator, stamper: stamper, cfg: cfg, now: now}
}

// Generate valida la solicitud y, si procede, genera el comprobante. Los
// errores de validación viajan dentro de la respuesta (success=false), nunca
// como error de Go; el error de retorno queda reservado para fallas de
// infraestructura (timbrado), que el handler traduce a 500.
func (uc *GenerateInvoiceUseCase) Generate(req dto.CFDIInvoiceRequest) (dto.CFDIInvoiceResponse, error) {
	total, raw := parseTotal(req.Total)
	result := cfdi.Validate(cfdi.InvoiceRequest{
		RFC:           req.RFC,
		TicketNumber:  req.TicketNumber,
		Total:         total,
		RawTotal:      raw,
		PaymentMethod: req.PaymentMethod,
	})
	if !result.IsValid() {
		return dto.CFDIInvoiceResponse{
			Success:          false,
			Message:          MsgValidationError,
			ValidationErrors: result.Errors(),
		}, nil
	}

	v := result.Request()
	subtotal, tax := cfdi.Decompose(v.Total)
	now := uc.now()
	series, folio, invoiceID := uc.allocator.Allocate(v.Channel, now)

	details := &cfdi.Details{
		InvoiceID:     invoiceID,
		RFC:           v.RFC,
		TicketNumber:  v.TicketNumber,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         v.Total.Round(2),
		PaymentMethod: v.PaymentMethod,
		Channel:       v.Channel,
		IssuedAt:      now,
		Series:        series,
		Folio:         folio,
	}

	folioFiscal, err := uc.stamper.Stamp(details)
	if err != nil {
		return dto.CFDIInvoiceResponse{}, fmt.Errorf("timbrar comprobante %s: %w", invoiceID, err)
	}
	details.FolioFiscal = folioFiscal

	return uc.assemble(details), nil
}

// assemble arma la respuesta de éxito a partir del comprobante.
func (uc *GenerateInvoiceUseCase) assemble(d *cfdi.Details) dto.CFDIInvoiceResponse {
	pdfURL := fmt.Sprintf("%s/%s.pdf", uc.cfg.PDFBaseURL, d.InvoiceID)
	return dto.CFDIInvoiceResponse{
		Success:          true,
		Message:          fmt.Sprintf("Factura CFDI generada exitosamente para RFC %s", d.RFC),
		InvoiceID:        &d.InvoiceID,
		PDFURL:           &pdfURL,
		ValidationErrors: []string{},
		InvoiceDetails: &dto.CFDIInvoiceDetails{
			InvoiceID:       d.InvoiceID,
			RFC:             d.RFC,
			TicketNumber:    d.TicketNumber,
			Subtotal:        cfdi.FormatMXN(d.Subtotal),
			IVA16:           cfdi.FormatMXN(d.Tax),
			Total:           cfdi.FormatMXN(d.Total),
			PaymentMethod:   string(d.PaymentMethod),
			TicketType:      d.Channel.Label(),
			IssuanceDate:    d.IssuedAt.Format("2006-01-02"),
			SATVerification: fmt.Sprintf("%s/%s", uc.cfg.SATBaseURL, d.InvoiceID),
			FolioFiscal:     d.FolioFiscal,
			Series:          d.Series,
			Folio:           d.Folio,
			CFDIVersion:     cfdi.Version,
		},
	}
}

// parseTotal convierte el json.Number a decimal conservando el literal. Un
// total ausente o ilegible queda en cero; las reglas de canal reportan después
// el problema como error de validación.
func parseTotal(n json.Number) (decimal.Decimal, string) {
	raw := n.String()
	if raw == "" {
		return decimal.Zero, ""
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, raw
	}
	return d, raw
}
