package dto

// OrderTrackingRequest body para POST /request_order_tracking.
type OrderTrackingRequest struct {
	OrderID string `json:"order_id"`
}

// OrderItem artículo dentro del pedido.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// OrderTrackingResponse estado del pedido según el sistema de logística.
type OrderTrackingResponse struct {
	OrderID           string      `json:"order_id"`
	Status            string      `json:"status"`
	EstimatedDelivery string      `json:"estimated_delivery"`
	CurrentLocation   string      `json:"current_location"`
	LastUpdate        string      `json:"last_update"`
	Items             []OrderItem `json:"items"`
	TrackingNumber    string      `json:"tracking_number"`
}
