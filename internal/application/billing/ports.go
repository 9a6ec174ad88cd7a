// Package billing orquesta la facturación CFDI del portal:
// validación → desglose de IVA → asignación de serie/folio → timbrado → respuesta.
package billing

import "github.com/juguetron/agent-api/internal/domain/cfdi"

// Stamper puerto de salida hacia el timbrado simulado: a partir del comprobante
// produce su folio fiscal (UUID). Para tests se inyecta un fake.
type Stamper interface {
	Stamp(details *cfdi.Details) (string, error)
}
