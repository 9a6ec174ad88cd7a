// Package catalog entidades del catálogo de productos de la tienda.
package catalog

// Product producto simplificado tal como lo expone el buscador a los agentes.
// Todos los campos salvo ID y Name son opcionales: el payload de VTEX no
// garantiza ninguno de ellos.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       string // ya formateado: $899.00 MXN
	ImageURL    string
	ProductURL  string
	Brand       string
	Category    string
}
