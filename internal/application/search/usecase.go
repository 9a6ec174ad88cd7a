// Package search caso de uso de búsqueda de productos sobre el buscador de la tienda.
package search

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/domain/catalog"
)

// Gateway puerto hacia el buscador de la tienda.
type Gateway interface {
	Autocomplete(ctx context.Context, query string) ([]string, error)
	ProductSuggestions(ctx context.Context, query string) ([]catalog.Product, error)
}

// UseCase búsqueda unificada: sugerencias de autocompletado + productos.
type UseCase struct {
	gw Gateway
}

// NewUseCase construye el caso de uso.
func NewUseCase(gw Gateway) *UseCase {
	return &UseCase{gw: gw}
}

// Search lanza autocompletado y productos en paralelo y arma la respuesta
// unificada. Una fuente caída no tumba la búsqueda: se registra el fallo y se
// responde con lo que sí llegó.
func (uc *UseCase) Search(ctx context.Context, query string) dto.SearchResponse {
	var (
		wg          sync.WaitGroup
		suggestions []string
		products    []catalog.Product
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		s, err := uc.gw.Autocomplete(ctx, query)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("autocompletado no disponible")
			return
		}
		suggestions = s
	}()
	go func() {
		defer wg.Done()
		p, err := uc.gw.ProductSuggestions(ctx, query)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("sugerencias de producto no disponibles")
			return
		}
		products = p
	}()
	wg.Wait()

	resp := dto.SearchResponse{
		Query:         query,
		Suggestions:   suggestions,
		Products:      make([]dto.ProductResponse, 0, len(products)),
		TotalProducts: len(products),
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	for _, p := range products {
		resp.Products = append(resp.Products, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			ProductURL:  p.ProductURL,
			Brand:       p.Brand,
			Category:    p.Category,
		})
	}
	return resp
}
