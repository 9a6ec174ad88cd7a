package vtex

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/juguetron/agent-api/internal/domain/catalog"
)

const (
	storeBaseURL   = "https://www.juguetron.mx"
	maxSuggestions = 10
)

// parseSuggestions extrae sugerencias del payload de autocompletado. El
// recorrido es tolerante: VTEX ha cambiado la estructura más de una vez y un
// payload irreconocible simplemente produce cero sugerencias.
func parseSuggestions(payload map[string]any) []string {
	data, _ := payload["data"].(map[string]any)
	auto, _ := data["autocompleteSearchSuggestions"].(map[string]any)

	var out []string
	if searches, ok := auto["searches"].([]any); ok {
		for _, s := range searches {
			m, ok := s.(map[string]any)
			if !ok {
				continue
			}
			if term, ok := m["term"].(string); ok && term != "" {
				out = append(out, term)
			}
		}
	}
	// Productos sugeridos dentro del autocompletado.
	if prods, ok := auto["productSuggestions"].([]any); ok {
		for _, p := range prods {
			m, ok := p.(map[string]any)
			if !ok {
				continue
			}
			if name := firstString(m, "name", "productName"); name != "" {
				out = append(out, name)
			}
		}
	}
	return dedupeSuggestions(out, maxSuggestions)
}

// foldTransformer minúsculas aparte, retira diacríticos: "Muñeca" y "muneca"
// cuentan como la misma sugerencia.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldKey(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// dedupeSuggestions conserva el orden de llegada y corta en max.
func dedupeSuggestions(in []string, max int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, max)
	for _, s := range in {
		k := foldKey(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}

// parseProducts extrae y normaliza los productos del payload de sugerencias.
// Solo se incluyen productos con nombre.
func parseProducts(payload map[string]any) []catalog.Product {
	data, _ := payload["data"].(map[string]any)

	var out []catalog.Product
	for _, rp := range rawProductList(data) {
		m, ok := rp.(map[string]any)
		if !ok {
			continue
		}
		p := parseProduct(m)
		if p.Name != "" {
			out = append(out, p)
		}
	}
	return out
}

// rawProductList localiza la lista de productos en las estructuras conocidas
// de VTEX: productSuggestions.products, productSuggestions como lista, o
// searchResult.
func rawProductList(data map[string]any) []any {
	for _, key := range []string{"productSuggestions", "searchResult"} {
		switch v := data[key].(type) {
		case map[string]any:
			if list, ok := v["products"].([]any); ok {
				return list
			}
		case []any:
			return v
		}
	}
	return nil
}

func parseProduct(m map[string]any) catalog.Product {
	return catalog.Product{
		ID:          firstString(m, "productId", "cacheId", "id"),
		Name:        firstString(m, "productName", "name"),
		Description: firstString(m, "description", "shortDescription"),
		Price:       parsePrice(m),
		ImageURL:    parseImageURL(m),
		ProductURL:  parseProductURL(m),
		Brand:       parseBrand(m),
		Category:    parseCategory(m),
	}
}

// parsePrice busca el precio en priceRange.sellingPrice (estructura actual)
// y en offer.offerPrice como respaldo.
func parsePrice(m map[string]any) string {
	if pr, ok := m["priceRange"].(map[string]any); ok {
		switch selling := pr["sellingPrice"].(type) {
		case map[string]any:
			if v, ok := asFloat(selling["lowPrice"]); ok && v > 0 {
				return formatPrice(v)
			}
			if v, ok := asFloat(selling["highPrice"]); ok {
				return formatPrice(v)
			}
		case float64:
			return formatPrice(selling)
		}
	}
	if offer, ok := m["offer"].(map[string]any); ok {
		if v, ok := asFloat(offer["offerPrice"]); ok {
			return formatPrice(v)
		}
	}
	return ""
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f MXN", v)
}

// parseImageURL toma la imagen principal del primer item; si no hay, busca la
// propiedad image_link.
func parseImageURL(m map[string]any) string {
	if items, ok := m["items"].([]any); ok && len(items) > 0 {
		if first, ok := items[0].(map[string]any); ok {
			if images, ok := first["images"].([]any); ok && len(images) > 0 {
				if img, ok := images[0].(map[string]any); ok {
					if u, ok := img["imageUrl"].(string); ok {
						return u
					}
				}
			}
		}
	}
	return propertyValue(m, "image_link")
}

// parseProductURL prefiere linkText para construir una URL limpia de la tienda.
func parseProductURL(m map[string]any) string {
	if linkText, ok := m["linkText"].(string); ok && linkText != "" {
		return fmt.Sprintf("%s/%s/p", storeBaseURL, linkText)
	}
	if link, ok := m["link"].(string); ok && link != "" {
		return link
	}
	return propertyValue(m, "link")
}

func parseBrand(m map[string]any) string {
	if brand, ok := m["brand"].(string); ok && brand != "" {
		return brand
	}
	return propertyValue(m, "brand")
}

// parseCategory usa la categoría más específica (la última) y limpia el
// formato /Categoria/Subcategoria/.
func parseCategory(m map[string]any) string {
	cats, ok := m["categories"].([]any)
	if !ok || len(cats) == 0 {
		return ""
	}
	last, ok := cats[len(cats)-1].(string)
	if !ok || last == "" {
		return ""
	}
	parts := strings.Split(strings.Trim(last, "/"), "/")
	return parts[len(parts)-1]
}

// propertyValue busca el primer valor de la propiedad con el nombre dado
// dentro de la lista properties.
func propertyValue(m map[string]any, name string) string {
	props, ok := m["properties"].([]any)
	if !ok {
		return ""
	}
	for _, p := range props {
		pm, ok := p.(map[string]any)
		if !ok || pm["name"] != name {
			continue
		}
		if values, ok := pm["values"].([]any); ok && len(values) > 0 {
			if v, ok := values[0].(string); ok {
				return v
			}
		}
	}
	return ""
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
