package finance

import (
	"context"

	"github.com/google/uuid"
)

// CreditRepository is the store contract for the credit record collection
type CreditRepository interface {
	Load(ctx context.Context) error
	All() []CreditRecord
	FindByID(id uuid.UUID) (*CreditRecord, error)
	Search(query string) []CreditRecord
	Add(ctx context.Context, record *CreditRecord) error
	Update(ctx context.Context, id uuid.UUID, mutate func(*CreditRecord) error) (*CreditRecord, error)
	Remove(ctx context.Context, id uuid.UUID) error
}
