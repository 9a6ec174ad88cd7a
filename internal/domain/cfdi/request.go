package cfdi

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod método de pago aceptado por el portal de facturación.
// La enumeración es cerrada y los literales son contrato con el cliente.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentDebit    PaymentMethod = "Tarjeta de Débito"
	PaymentCredit   PaymentMethod = "Tarjeta de Crédito"
	PaymentTransfer PaymentMethod = "Transferencia electrónica de fondos"
)

// PaymentMethods enumeración completa, en el orden en que se comunica al cliente.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentDebit, PaymentCredit, PaymentTransfer}

// ValidPaymentMethod reporta si s coincide literalmente con un método aceptado.
func ValidPaymentMethod(s string) bool {
	for _, m := range PaymentMethods {
		if s == string(m) {
			return true
		}
	}
	return false
}

// MinRFCLength longitud mínima del RFC una vez retirados guiones y espacios.
const MinRFCLength = 12

// InvoiceRequest solicitud de facturación tal como llega del portal.
// RawTotal conserva el literal JSON del total: la regla de centavos de tienda
// física distingue entre 1452 y 1452.50, distinción que un float ya perdió.
type InvoiceRequest struct {
	RFC           string
	TicketNumber  string
	Total         decimal.Decimal
	RawTotal      string
	PaymentMethod string
}

// ValidatedRequest solicitud normalizada que sale del validador: RFC limpio y
// en mayúsculas, ticket en mayúsculas y canal ya clasificado.
type ValidatedRequest struct {
	RFC           string
	TicketNumber  string
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	Channel       Channel
}

// NormalizeRFC retira guiones y espacios y pasa a mayúsculas.
func NormalizeRFC(rfc string) string {
	r := strings.ReplaceAll(rfc, "-", "")
	r = strings.ReplaceAll(r, " ", "")
	return strings.ToUpper(r)
}
