package integration

import (
	"context"
	"strings"

	"github.com/bizmate/backend/internal/domain/integration"
	"github.com/bizmate/backend/internal/domain/shared"
)

// SearchMode selects which provider endpoint serves the query
type SearchMode string

const (
	SearchModeAddress SearchMode = "address"
	SearchModeKeyword SearchMode = "keyword"
)

// AddressService fronts the external address lookup provider
type AddressService struct {
	searcher integration.AddressSearcher
}

// NewAddressService creates a new AddressService
func NewAddressService(searcher integration.AddressSearcher) *AddressService {
	return &AddressService{searcher: searcher}
}

// Search looks up address candidates for a query. An empty result is not an
// error.
func (s *AddressService) Search(ctx context.Context, mode SearchMode, query string) ([]integration.AddressResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Search query cannot be empty")
	}

	switch mode {
	case SearchModeKeyword:
		return s.searcher.SearchByKeyword(ctx, query)
	case SearchModeAddress, "":
		return s.searcher.SearchByAddress(ctx, query)
	default:
		return nil, shared.NewDomainError("INVALID_INPUT", "mode must be address or keyword")
	}
}
