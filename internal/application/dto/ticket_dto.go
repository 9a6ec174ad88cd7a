package dto

// CreateTicketRequest body para POST /request_create_zendesk_ticket.
type CreateTicketRequest struct {
	Email       string `json:"email"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Sentiment   string `json:"sentiment,omitempty"`
}

// CreateTicketResponse ticket de soporte creado.
type CreateTicketResponse struct {
	Success               bool   `json:"success"`
	TicketID              string `json:"ticket_id"`
	Message               string `json:"message"`
	Priority              string `json:"priority"`
	EstimatedResponseTime string `json:"estimated_response_time"`
}
