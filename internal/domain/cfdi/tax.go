package cfdi

import "github.com/shopspring/decimal"

// vatDivisor divisor para extraer la base de un total con IVA 16% incluido.
var vatDivisor = decimal.NewFromFloat(1.16)

// Decompose separa un total con IVA incluido en subtotal e IVA al 16%.
// subtotal = total / 1.16 redondeado half-up a 2 decimales; el IVA es la
// diferencia contra el total, de modo que subtotal + IVA reconstruye el total
// exacto sin fuga de redondeo. Un total de cero (flujo online) produce cero/cero.
func Decompose(total decimal.Decimal) (subtotal, tax decimal.Decimal) {
	rounded := total.Round(2)
	if rounded.IsZero() {
		return decimal.Zero, decimal.Zero
	}
	subtotal = rounded.DivRound(vatDivisor, 2)
	tax = rounded.Sub(subtotal)
	return subtotal, tax
}

// FormatMXN formatea un monto con el símbolo y divisa del portal: $1452.50 MXN.
func FormatMXN(d decimal.Decimal) string {
	return "$" + d.StringFixed(2) + " MXN"
}
