// Package sat simula el timbrado de comprobantes CFDI 4.0: construye la
// representación XML del comprobante y deriva su folio fiscal (UUID) a partir
// del digest SHA-256 de la forma canónica del documento.
package sat

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/juguetron/agent-api/internal/domain/cfdi"
)

// Namespace oficial CFDI 4.0 del SAT.
const nsCFDI = "http://www.sat.gob.mx/cfd/4"

// Códigos del catálogo c_FormaPago del SAT.
const (
	formaPagoEfectivo      = "01"
	formaPagoTransferencia = "03"
	formaPagoTarjetaCred   = "04"
	formaPagoTarjetaDeb    = "28"
	formaPagoPorDefinir    = "99"
)

// CFDIStamper implementa billing.Stamper construyendo el XML del comprobante
// y canonicalizándolo para obtener un folio fiscal determinista.
type CFDIStamper struct{}

// NewCFDIStamper crea el servicio.
func NewCFDIStamper() *CFDIStamper {
	return &CFDIStamper{}
}

// Stamp genera el folio fiscal del comprobante. Mismo comprobante, mismo folio
// fiscal: el digest se calcula sobre la forma canónica del XML, por lo que el
// resultado no depende del orden de atributos ni del espacio en blanco.
func (s *CFDIStamper) Stamp(d *cfdi.Details) (string, error) {
	if d == nil {
		return "", fmt.Errorf("sat: comprobante nulo")
	}
	xmlBytes, err := buildComprobante(d)
	if err != nil {
		return "", fmt.Errorf("construir comprobante: %w", err)
	}
	canonical, err := canonicalize(xmlBytes)
	if err != nil {
		return "", fmt.Errorf("canonicalizar comprobante: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return formatFolioFiscal(sum), nil
}

// buildComprobante arma el cfdi:Comprobante 4.0 mínimo del portal: encabezado
// con serie/folio/fecha y montos, receptor y el traslado de IVA 16%.
func buildComprobante(d *cfdi.Details) ([]byte, error) {
	doc := etree.NewDocument()

	comp := doc.CreateElement("cfdi:Comprobante")
	comp.CreateAttr("xmlns:cfdi", nsCFDI)
	comp.CreateAttr("Version", cfdi.Version)
	comp.CreateAttr("Serie", d.Series)
	comp.CreateAttr("Folio", d.Folio)
	comp.CreateAttr("Fecha", d.IssuedAt.Format("2006-01-02T15:04:05"))
	comp.CreateAttr("SubTotal", d.Subtotal.StringFixed(2))
	comp.CreateAttr("Total", d.Total.StringFixed(2))
	comp.CreateAttr("Moneda", "MXN")
	comp.CreateAttr("FormaPago", formaPagoCode(d.PaymentMethod))
	comp.CreateAttr("TipoDeComprobante", "I")

	receptor := comp.CreateElement("cfdi:Receptor")
	receptor.CreateAttr("Rfc", d.RFC)
	receptor.CreateAttr("UsoCFDI", "G03")

	impuestos := comp.CreateElement("cfdi:Impuestos")
	impuestos.CreateAttr("TotalImpuestosTrasladados", d.Tax.StringFixed(2))
	traslado := impuestos.CreateElement("cfdi:Traslados").CreateElement("cfdi:Traslado")
	traslado.CreateAttr("Impuesto", "002")
	traslado.CreateAttr("TipoFactor", "Tasa")
	traslado.CreateAttr("TasaOCuota", "0.160000")
	traslado.CreateAttr("Importe", d.Tax.StringFixed(2))

	return doc.WriteToBytes()
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

// formatFolioFiscal presenta los primeros 16 bytes del digest con la forma
// 8-4-4-4-12 de los folios fiscales del SAT.
func formatFolioFiscal(sum [sha256.Size]byte) string {
	h := hex.EncodeToString(sum[:16])
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s-%s-%s", h[0:8], h[8:12], h[12:16], h[16:20], h[20:32]))
}

func formaPagoCode(pm cfdi.PaymentMethod) string {
	switch pm {
	case cfdi.PaymentCash:
		return formaPagoEfectivo
	case cfdi.PaymentTransfer:
		return formaPagoTransferencia
	case cfdi.PaymentCredit:
		return formaPagoTarjetaCred
	case cfdi.PaymentDebit:
		return formaPagoTarjetaDeb
	default:
		return formaPagoPorDefinir
	}
}
