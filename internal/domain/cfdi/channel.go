// Package cfdi contiene el motor de facturación del portal de Juguetron:
// clasificación del canal de venta, validación de solicitudes, desglose del
// IVA incluido y asignación de serie/folio del comprobante.
package cfdi

import (
	"regexp"
	"strings"
)

// Channel canal de venta inferido del número de ticket. Se clasifica una sola
// vez y todas las reglas posteriores consumen el valor ya clasificado, en vez
// de re-inspeccionar el prefijo del ticket.
type Channel int

const (
	// ChannelUnknown ticket que no corresponde a ningún canal conocido.
	ChannelUnknown Channel = iota
	// ChannelPhysicalStore ticket de tienda física: V + 8 dígitos.
	ChannelPhysicalStore
	// ChannelOnlineStore ticket de tienda online: O401/O404 + 5 dígitos.
	ChannelOnlineStore
)

var (
	physicalTicketRe = regexp.MustCompile(`^V[0-9]{8}$`)
	onlineTicketRe   = regexp.MustCompile(`^O40[14][0-9]{5}$`)
)

// ClassifyTicket determina el canal de venta según el formato del ticket.
// La gramática de prefijos vive únicamente aquí.
func ClassifyTicket(ticketNumber string) Channel {
	t := strings.ToUpper(strings.TrimSpace(ticketNumber))
	switch {
	case physicalTicketRe.MatchString(t):
		return ChannelPhysicalStore
	case onlineTicketRe.MatchString(t):
		return ChannelOnlineStore
	default:
		return ChannelUnknown
	}
}

// Series letra de serie fija del canal: M para mostrador (tienda física),
// W para web (tienda online).
func (c Channel) Series() string {
	switch c {
	case ChannelPhysicalStore:
		return "M"
	case ChannelOnlineStore:
		return "W"
	default:
		return ""
	}
}

// Label nombre legible del canal, tal como aparece en invoice_details.ticket_type.
func (c Channel) Label() string {
	switch c {
	case ChannelPhysicalStore:
		return "Tienda Física"
	case ChannelOnlineStore:
		return "Tienda Online"
	default:
		return "Desconocido"
	}
}
