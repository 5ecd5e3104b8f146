package partner

import (
	"context"

	"github.com/google/uuid"
)

// CompanyRepository is the store contract for the company collection.
// Load replaces the in-memory collection from persistent storage; every
// mutation persists the full collection before it becomes visible to reads.
type CompanyRepository interface {
	Load(ctx context.Context) error
	All() []Company
	FindByID(id uuid.UUID) (*Company, error)
	Search(query string) []Company
	Add(ctx context.Context, company *Company) error
	Update(ctx context.Context, id uuid.UUID, mutate func(*Company) error) (*Company, error)
	Remove(ctx context.Context, id uuid.UUID) error
}
