package usecase

import (
	"context"
	"log"

	"github.com/siyam-display/catalog-api/internal/entity"
)

// fallbackLimit caps the regex path so a degraded search never turns
// into a full scan of the catalog.
const fallbackLimit = 50

// CatalogService answers every read against the part catalog: category
// listings, token-filtered listings, autocomplete and single-product
// lookups.
type CatalogService struct {
	Parts entity.PartRepositoryInterface
}

func NewCatalogService(parts entity.PartRepositoryInterface) *CatalogService {
	return &CatalogService{Parts: parts}
}

// ListProducts filters the catalog by category and/or search token. An
// unknown category key is an empty result set, decided without touching
// the store.
func (s *CatalogService) ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	filter := entity.PartFilter{Search: input.Search}

	if input.Category != "" {
		category, ok := entity.LookupCategory(input.Category)
		if !ok {
			return &ListProductsOutput{Products: []*entity.Part{}, Count: 0}, nil
		}
		filter.Category = category.Key
	}

	products, err := s.Parts.Find(ctx, filter)
	if err != nil {
		return nil, NewTechnicalError("DB_ERROR", err.Error())
	}

	return &ListProductsOutput{Products: products, Count: len(products)}, nil
}

// GetProduct fetches one part by category and exact siyam_ref. A nil
// part with nil error means not found; the caller renders that state.
func (s *CatalogService) GetProduct(ctx context.Context, categoryKey, siyamRef string) (*entity.Part, error) {
	category, ok := entity.LookupCategory(categoryKey)
	if !ok {
		return nil, nil
	}

	part, err := s.Parts.FindOne(ctx, category.Key, siyamRef)
	if err != nil {
		return nil, NewTechnicalError("DB_ERROR", err.Error())
	}
	return part, nil
}

// Search runs the indexed autocomplete over siyam_ref, model and oem.
// An empty query short-circuits to an empty result with no store call.
// If the indexed path errors the regex fallback serves the request
// instead; search degrades, it does not fail the page.
func (s *CatalogService) Search(ctx context.Context, query string) (*SearchOutput, error) {
	if query == "" {
		return &SearchOutput{Results: []*entity.Part{}, Count: 0}, nil
	}

	results, err := s.Parts.Autocomplete(ctx, query)
	if err == nil {
		return &SearchOutput{Results: results, Count: len(results)}, nil
	}

	log.Printf("indexed search failed, using regex fallback: %v", err)

	results, err = s.Parts.AutocompleteFallback(ctx, query, fallbackLimit)
	if err != nil {
		return nil, NewTechnicalError("SEARCH_ERROR", err.Error())
	}

	return &SearchOutput{Results: results, Count: len(results), UsedFallback: true}, nil
}
