// Package vtex cliente del buscador de la tienda (VTEX GraphQL con consultas
// persistidas). Solo lectura: autocompletado y sugerencias de productos.
package vtex

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/juguetron/agent-api/internal/domain/catalog"
	"github.com/juguetron/agent-api/pkg/config"
)

const (
	opAutocomplete       = "autocompleteSearchSuggestions"
	opProductSuggestions = "productSuggestions"

	persistedQuerySender   = "vtex.store-resources@0.x"
	persistedQueryProvider = "vtex.search-graphql@0.x"
)

// Client cliente HTTP del buscador. Reintenta fallas de red con backoff;
// un status no-200 no se reintenta (la tienda responde 200 incluso para
// términos sin resultados).
type Client struct {
	http *http.Client
	cfg  config.VTEXConfig
}

// NewClient construye el cliente con reintentos.
func NewClient(cfg config.VTEXConfig) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 3 * time.Second
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}

	return &Client{http: rc.StandardClient(), cfg: cfg}
}

// Autocomplete obtiene las sugerencias de búsqueda para el término dado.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]string, error) {
	u, err := c.buildURL(opAutocomplete, c.cfg.AutocompleteHash, map[string]any{"fullText": query})
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	return parseSuggestions(payload), nil
}

// ProductSuggestions obtiene los productos sugeridos para el término dado.
func (c *Client) ProductSuggestions(ctx context.Context, query string) ([]catalog.Product, error) {
	vars := map[string]any{
		"fullText":             query,
		"productOriginVtex":    true,
		"simulationBehavior":   "default",
		"hideUnavailableItems": false,
		"advertisementOptions": map[string]any{
			"showSponsored":           true,
			"sponsoredCount":          2,
			"repeatSponsoredProducts": false,
			"advertisementPlacement":  "autocorrect",
		},
		"count":           12,
		"shippingOptions": []string{},
		"variant":         nil,
		"origin":          "autocorrect",
	}
	u, err := c.buildURL(opProductSuggestions, c.cfg.ProductSuggestionsHash, vars)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	return parseProducts(payload), nil
}

// buildURL arma la URL de consulta persistida: las variables van en base64
// dentro del parámetro extensions, como lo espera la plataforma.
func (c *Client) buildURL(operationName, hash string, vars map[string]any) (string, error) {
	rawVars, err := json.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("vtex: serializar variables: %w", err)
	}

	extensions := map[string]any{
		"persistedQuery": map[string]any{
			"version":    1,
			"sha256Hash": hash,
			"sender":     persistedQuerySender,
			"provider":   persistedQueryProvider,
		},
		"variables": base64.StdEncoding.EncodeToString(rawVars),
	}
	rawExt, err := json.Marshal(extensions)
	if err != nil {
		return "", fmt.Errorf("vtex: serializar extensions: %w", err)
	}

	q := url.Values{}
	q.Set("workspace", "master")
	q.Set("maxAge", "medium")
	q.Set("domain", "store")
	q.Set("locale", "es-MX")
	q.Set("operationName", operationName)
	q.Set("extensions", string(rawExt))

	return c.cfg.BaseURL + "?" + q.Encode(), nil
}

func (c *Client) get(ctx context.Context, u string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("vtex: crear petición: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vtex: consultar buscador: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vtex: el buscador respondió %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("vtex: decodificar respuesta: %w", err)
	}
	return payload, nil
}
