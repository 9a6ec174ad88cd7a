package cfdi

import (
	"fmt"
	"sync/atomic"
	"time"
)

// DefaultInvoicePrefix prefijo del identificador de factura que emite el
// portal (ej. C10126-M24-543210).
const DefaultInvoicePrefix = "C10126"

// FolioAllocator entrega folios consecutivos y compone el identificador del
// comprobante. El contador es la única pieza de estado mutable del motor; se
// instancia uno por proceso (o por test) y el incremento es atómico, por lo
// que dos llamadas concurrentes nunca reciben el mismo folio.
type FolioAllocator struct {
	prefix string
	next   atomic.Uint64
}

// NewFolioAllocator crea un asignador que entrega folios a partir de start.
// Un prefix vacío usa DefaultInvoicePrefix.
func NewFolioAllocator(prefix string, start uint64) *FolioAllocator {
	if prefix == "" {
		prefix = DefaultInvoicePrefix
	}
	a := &FolioAllocator{prefix: prefix}
	a.next.Store(start)
	return a
}

// Allocate reserva el siguiente folio (seis dígitos) y compone el identificador
// {prefijo}-{serie}{añoDosDígitos}-{folio} para el canal dado.
func (a *FolioAllocator) Allocate(channel Channel, now time.Time) (series, folio, invoiceID string) {
	n := a.next.Add(1) - 1
	series = channel.Series()
	folio = fmt.Sprintf("%06d", n%1_000_000)
	invoiceID = fmt.Sprintf("%s-%s%02d-%s", a.prefix, series, now.Year()%100, folio)
	return series, folio, invoiceID
}
