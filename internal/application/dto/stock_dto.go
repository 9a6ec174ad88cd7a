package dto

// StockCheckRequest body para POST /request_stock_check.
type StockCheckRequest struct {
	SKU     string `json:"sku"`
	ZipCode string `json:"zip_code,omitempty"`
}

// StockInfo existencias del SKU consultado.
type StockInfo struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"` // in_stock | out_of_stock
}

// StockLocation tienda con existencias del producto.
type StockLocation struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Quantity int    `json:"quantity"`
	Distance string `json:"distance"`
}

// StockCheckResponse respuesta de verificación de stock.
type StockCheckResponse struct {
	Success            bool            `json:"success"`
	Message            string          `json:"message"`
	Stock              StockInfo       `json:"stock"`
	AvailableLocations []StockLocation `json:"available_locations"`
	EstimatedDelivery  string          `json:"estimated_delivery,omitempty"`
}
