package integration

import (
	"context"

	"github.com/bizmate/backend/internal/domain/shared"
)

// AddressResult is one candidate returned by the address lookup provider
type AddressResult struct {
	Address     string `json:"address"`
	RoadAddress string `json:"road_address,omitempty"`
	Longitude   string `json:"longitude"`
	Latitude    string `json:"latitude"`
}

// AddressSearcher is the outbound contract for the third-party address lookup.
// An empty result list is a valid, non-error outcome; transport failures and
// non-2xx responses surface as a SEARCH_FAILED domain error.
type AddressSearcher interface {
	SearchByAddress(ctx context.Context, query string) ([]AddressResult, error)
	SearchByKeyword(ctx context.Context, query string) ([]AddressResult, error)
}

// NewSearchFailedError wraps a provider failure as a recoverable domain error
func NewSearchFailedError(message string) *shared.DomainError {
	return shared.NewDomainError("SEARCH_FAILED", message)
}
