package cfdi

import "strings"

// Mensajes de validación del portal. El texto exacto es contrato: los agentes
// que consumen la API los muestran tal cual al cliente.
const (
	MsgRFCTooShort     = "RFC debe tener mínimo 12 caracteres sin incluir guiones"
	MsgTicketFormat    = "Formato de ticket no válido. Debe ser Vxxxxxxxx (tienda física) o O401xxxxx/O404xxxxx (tienda online)"
	MsgPhysicalCents   = "Para tienda física, el total debe contener un punto (.) para incluir centavos"
	MsgTooManyDecimals = "El total solo puede tener hasta 2 decimales para centavos"
	MsgPhysicalAmount  = "Para tienda física, el total debe ser mayor a cero"
	MsgOnlineZero      = "Para tienda online, el total debe ser 0 (cero)"
	MsgPaymentMethod   = "Método de pago no válido. Debe ser uno de: Efectivo, Tarjeta de Débito, Tarjeta de Crédito, Transferencia electrónica de fondos"
)

// ValidationResult resultado de Validate: o bien una solicitud normalizada con
// su canal, o bien la lista ordenada de errores. Nunca ambas cosas; los campos
// no exportados y los constructores Valid/Invalid garantizan la disyunción.
type ValidationResult struct {
	req  *ValidatedRequest
	errs []string
}

// Valid construye un resultado exitoso.
func Valid(req ValidatedRequest) ValidationResult {
	return ValidationResult{req: &req}
}

// Invalid construye un resultado fallido con la lista ordenada de errores.
func Invalid(errs []string) ValidationResult {
	return ValidationResult{errs: errs}
}

// IsValid reporta si la solicitud pasó todas las reglas.
func (r ValidationResult) IsValid() bool { return r.req != nil }

// Request devuelve la solicitud normalizada. Solo tiene sentido si IsValid.
func (r ValidationResult) Request() ValidatedRequest { return *r.req }

// Errors devuelve la lista de errores en el orden de evaluación de las reglas.
func (r ValidationResult) Errors() []string { return r.errs }

// Validate aplica la gramática de validación del portal. Las reglas se
// acumulan (no hay corto circuito): todas las violaciones aplicables se
// reportan juntas y en orden estable. La única excepción son las reglas que
// dependen del canal: con un ticket malformado el canal es desconocido y esas
// reglas se omiten para no arrastrar errores sin sentido.
func Validate(req InvoiceRequest) ValidationResult {
	var errs []string

	// 1. RFC: mínimo 12 caracteres sin contar guiones ni espacios.
	rfc := NormalizeRFC(req.RFC)
	if len(rfc) < MinRFCLength {
		errs = append(errs, MsgRFCTooShort)
	}

	// 2. Canal según el formato del ticket.
	channel := ClassifyTicket(req.TicketNumber)
	if channel == ChannelUnknown {
		errs = append(errs, MsgTicketFormat)
	}

	// 3. Total según canal, solo cuando el canal es conocido.
	switch channel {
	case ChannelPhysicalStore:
		errs = append(errs, validatePhysicalTotal(req)...)
	case ChannelOnlineStore:
		if !req.Total.IsZero() {
			errs = append(errs, MsgOnlineZero)
		}
	}

	// 4. Método de pago dentro de la enumeración cerrada.
	if !ValidPaymentMethod(req.PaymentMethod) {
		errs = append(errs, MsgPaymentMethod)
	}

	if len(errs) > 0 {
		return Invalid(errs)
	}
	return Valid(ValidatedRequest{
		RFC:           rfc,
		TicketNumber:  strings.ToUpper(strings.TrimSpace(req.TicketNumber)),
		Total:         req.Total,
		PaymentMethod: PaymentMethod(req.PaymentMethod),
		Channel:       channel,
	})
}

// validatePhysicalTotal reglas de total para tienda física: el literal debe
// traer punto decimal (centavos explícitos), máximo 2 decimales y monto
// positivo.
func validatePhysicalTotal(req InvoiceRequest) []string {
	var errs []string
	raw := strings.TrimSpace(req.RawTotal)
	if dot := strings.IndexByte(raw, '.'); dot < 0 {
		errs = append(errs, MsgPhysicalCents)
	} else if len(raw)-dot-1 > 2 {
		errs = append(errs, MsgTooManyDecimals)
	}
	if !req.Total.IsPositive() {
		errs = append(errs, MsgPhysicalAmount)
	}
	return errs
}
