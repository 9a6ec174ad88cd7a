package dto

// SearchRequest body para POST /search. Acepta tanto termino_busqueda como
// query; cualquiera de los dos sirve como término de búsqueda.
type SearchRequest struct {
	TerminoBusqueda string `json:"termino_busqueda"`
	Query           string `json:"query"`
}

// ProductResponse producto simplificado para agentes de IA.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	ProductURL  string `json:"product_url,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
}

// SearchResponse respuesta unificada de búsqueda: sugerencias de autocompletado
// y productos con precio, imagen y enlace.
type SearchResponse struct {
	Query         string            `json:"query"`
	Suggestions   []string          `json:"suggestions"`
	Products      []ProductResponse `json:"products"`
	TotalProducts int               `json:"total_products"`
}
