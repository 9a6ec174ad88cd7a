package vtex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodePayload convierte JSON literal a la estructura genérica que entregan
// las respuestas de VTEX.
func decodePayload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

// ──────────────────────────────────────────────────────────────────────────────
// Sugerencias
// ──────────────────────────────────────────────────────────────────────────────

func TestParseSuggestions_TerminosYProductos(t *testing.T) {
	payload := decodePayload(t, `{
		"data": {
			"autocompleteSearchSuggestions": {
				"searches": [
					{"term": "lego"},
					{"term": "lego city"}
				],
				"productSuggestions": [
					{"name": "LEGO City Estación de Policía"},
					{"productName": "LEGO Friends Casa"}
				]
			}
		}
	}`)

	got := parseSuggestions(payload)

	assert.Equal(t, []string{
		"lego",
		"lego city",
		"LEGO City Estación de Policía",
		"LEGO Friends Casa",
	}, got)
}

// TestParseSuggestions_DeduplicaSinDiacriticos "Muñeca" y "muneca" cuentan como
// la misma sugerencia; sobrevive la primera.
func TestParseSuggestions_DeduplicaSinDiacriticos(t *testing.T) {
	payload := decodePayload(t, `{
		"data": {
			"autocompleteSearchSuggestions": {
				"searches": [
					{"term": "Muñeca"},
					{"term": "muneca"},
					{"term": "MUÑECA "},
					{"term": "bebé"},
					{"term": "bebe"}
				]
			}
		}
	}`)

	got := parseSuggestions(payload)

	assert.Equal(t, []string{"Muñeca", "bebé"}, got)
}

// TestParseSuggestions_CortaEnDiez máximo diez sugerencias, en orden de llegada.
func TestParseSuggestions_CortaEnDiez(t *testing.T) {
	payload := decodePayload(t, `{
		"data": {
			"autocompleteSearchSuggestions": {
				"searches": [
					{"term": "s01"}, {"term": "s02"}, {"term": "s03"}, {"term": "s04"},
					{"term": "s05"}, {"term": "s06"}, {"term": "s07"}, {"term": "s08"},
					{"term": "s09"}, {"term": "s10"}, {"term": "s11"}, {"term": "s12"}
				]
			}
		}
	}`)

	got := parseSuggestions(payload)

	require.Len(t, got, 10)
	assert.Equal(t, "s01", got[0])
	assert.Equal(t, "s10", got[9])
}

// TestParseSuggestions_PayloadIrreconocible un payload vacío o con otra forma
// produce cero sugerencias, sin pánico.
func TestParseSuggestions_PayloadIrreconocible(t *testing.T) {
	assert.Empty(t, parseSuggestions(map[string]any{}))
	assert.Empty(t, parseSuggestions(decodePayload(t, `{"data": {"otraCosa": [1, 2, 3]}}`)))
	assert.Empty(t, parseSuggestions(decodePayload(t, `{"data": {"autocompleteSearchSuggestions": {"searches": "no-es-lista"}}}`)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestParseProducts_EstructuraActual(t *testing.T) {
	payload := decodePayload(t, `{
		"data": {
			"productSuggestions": {
				"products": [
					{
						"productId": "12345",
						"productName": "LEGO City Estación de Policía",
						"description": "Set de construcción de 668 piezas",
						"linkText": "lego-city-estacion-de-policia",
						"brand": "LEGO",
						"categories": ["/Juguetes/", "/Juguetes/Construcción/"],
						"priceRange": {
							"sellingPrice": {"lowPrice": 1452.50, "highPrice": 1599.00}
						},
						"items": [
							{"images": [{"imageUrl": "https://cdn.juguetron.mx/lego.jpg"}]}
						]
					}
				]
			}
		}
	}`)

	got := parseProducts(payload)

	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "12345", p.ID)
	assert.Equal(t, "LEGO City Estación de Policía", p.Name)
	assert.Equal(t, "Set de construcción de 668 piezas", p.Description)
	assert.Equal(t, "$1452.50 MXN", p.Price)
	assert.Equal(t, "https://cdn.juguetron.mx/lego.jpg", p.ImageURL)
	assert.Equal(t, "https://www.juguetron.mx/lego-city-estacion-de-policia/p", p.ProductURL)
	assert.Equal(t, "LEGO", p.Brand)
	assert.Equal(t, "Construcción", p.Category)
}

// TestParseProducts_ListaDirecta productSuggestions como lista plana también se
// reconoce.
func TestParseProducts_ListaDirecta(t *testing.T) {
	payload := decodePayload(t, `{
		"data": {
			"productSuggestions": [
				{"name": "Barbie Casa de los Sueños"},
				{"sinNombre": true}
			]
		}
	}`)

	got := parseProducts(payload)

	require.Len(t, got, 1, "los productos sin nombre se descartan")
	assert.Equal(t, "Barbie Casa de los Sueños", got[0].Name)
}

// TestParsePrice_Respaldos orden de búsqueda del precio: sellingPrice.lowPrice,
// highPrice, sellingPrice numérico, offer.offerPrice.
func TestParsePrice_Respaldos(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			"lowPrice presente",
			`{"priceRange": {"sellingPrice": {"lowPrice": 899.50}}}`,
			"$899.50 MXN",
		},
		{
			"lowPrice en cero usa highPrice",
			`{"priceRange": {"sellingPrice": {"lowPrice": 0, "highPrice": 999.00}}}`,
			"$999.00 MXN",
		},
		{
			"sellingPrice numérico",
			`{"priceRange": {"sellingPrice": 450.75}}`,
			"$450.75 MXN",
		},
		{
			"respaldo offer.offerPrice",
			`{"offer": {"offerPrice": 120.00}}`,
			"$120.00 MXN",
		},
		{
			"sin precio",
			`{"otraCosa": 1}`,
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parsePrice(decodePayload(t, tc.raw)))
		})
	}
}

// TestParseImageURL_RespaldoPorPropiedad sin items, la imagen sale de la
// propiedad image_link.
func TestParseImageURL_RespaldoPorPropiedad(t *testing.T) {
	m := decodePayload(t, `{
		"properties": [
			{"name": "otra", "values": ["x"]},
			{"name": "image_link", "values": ["https://cdn.juguetron.mx/img.jpg"]}
		]
	}`)

	assert.Equal(t, "https://cdn.juguetron.mx/img.jpg", parseImageURL(m))
}

// TestParseCategory_UsaLaMasEspecifica la última categoría, sin barras.
func TestParseCategory_UsaLaMasEspecifica(t *testing.T) {
	m := decodePayload(t, `{"categories": ["/Juguetes/", "/Juguetes/Muñecas/Accesorios/"]}`)

	assert.Equal(t, "Accesorios", parseCategory(m))
}
