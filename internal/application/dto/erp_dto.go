package dto

// ERPInvoiceRequest body para POST /request_invoice_generation.
type ERPInvoiceRequest struct {
	OrderID string `json:"order_id"`
	RFC     string `json:"rfc"`
}

// ERPInvoiceResponse factura generada por el ERP simulado.
type ERPInvoiceResponse struct {
	Success   bool   `json:"success"`
	InvoiceID string `json:"invoice_id"`
	PDFURL    string `json:"pdf_url"`
	Message   string `json:"message"`
	Total     string `json:"total"`
	Tax       string `json:"tax"`
}
