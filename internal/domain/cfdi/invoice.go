package cfdi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Version versión del estándar CFDI que simula el portal.
const Version = "4.0"

// Details comprobante generado: identificador, desglose de montos y metadatos.
// Se construye completo en cada llamada y no se persiste.
type Details struct {
	InvoiceID     string
	RFC           string
	TicketNumber  string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	Channel       Channel
	IssuedAt      time.Time
	Series        string
	Folio         string
	FolioFiscal   string // UUID asignado por el timbrado simulado
}
