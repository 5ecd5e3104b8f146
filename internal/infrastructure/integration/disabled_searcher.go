package integration

import (
	"context"

	"github.com/bizmate/backend/internal/domain/integration"
)

// DisabledSearcher stands in for the address provider when no API key is
// configured. Every lookup fails with SEARCH_FAILED; the rest of the backend
// keeps running without the integration.
type DisabledSearcher struct{}

// NewDisabledSearcher creates a searcher that rejects every lookup
func NewDisabledSearcher() *DisabledSearcher {
	return &DisabledSearcher{}
}

// SearchByAddress always fails with SEARCH_FAILED
func (s *DisabledSearcher) SearchByAddress(_ context.Context, _ string) ([]integration.AddressResult, error) {
	return nil, integration.NewSearchFailedError("Address search is not configured")
}

// SearchByKeyword always fails with SEARCH_FAILED
func (s *DisabledSearcher) SearchByKeyword(_ context.Context, _ string) ([]integration.AddressResult, error) {
	return nil, integration.NewSearchFailedError("Address search is not configured")
}

// Ensure DisabledSearcher implements AddressSearcher
var _ integration.AddressSearcher = (*DisabledSearcher)(nil)
