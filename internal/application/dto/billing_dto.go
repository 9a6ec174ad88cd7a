package dto

import "encoding/json"

// CFDIInvoiceRequest body para POST /generate_cfdi_invoice.
// Total usa json.Number para conservar el literal recibido (1452 vs 1452.50):
// la regla de centavos de tienda física depende de cómo lo escribió el cliente.
type CFDIInvoiceRequest struct {
	RFC           string      `json:"rfc"`
	TicketNumber  string      `json:"ticket_number"`
	Total         json.Number `json:"total"`
	PaymentMethod string      `json:"payment_method"`
}

// CFDIInvoiceResponse respuesta de facturación CFDI. En fallo de validación
// success es false, validation_errors trae la lista ordenada y los campos de
// factura van en null; en éxito validation_errors es la lista vacía.
type CFDIInvoiceResponse struct {
	Success          bool                `json:"success"`
	Message          string              `json:"message"`
	InvoiceID        *string             `json:"invoice_id"`
	PDFURL           *string             `json:"pdf_url"`
	ValidationErrors []string            `json:"validation_errors"`
	InvoiceDetails   *CFDIInvoiceDetails `json:"invoice_details"`
}

// CFDIInvoiceDetails desglose del comprobante generado.
type CFDIInvoiceDetails struct {
	InvoiceID       string `json:"invoice_id"`
	RFC             string `json:"rfc"`
	TicketNumber    string `json:"ticket_number"`
	Subtotal        string `json:"subtotal"`
	IVA16           string `json:"iva_16"`
	Total           string `json:"total"`
	PaymentMethod   string `json:"payment_method"`
	TicketType      string `json:"ticket_type"`
	IssuanceDate    string `json:"issuance_date"`
	SATVerification string `json:"sat_verification"`
	FolioFiscal     string `json:"folio_fiscal"`
	Series          string `json:"series"`
	Folio           string `json:"folio"`
	CFDIVersion     string `json:"cfdi_version"`
}
