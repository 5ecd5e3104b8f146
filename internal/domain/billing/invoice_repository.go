package billing

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository is the store contract for the invoice collection
type InvoiceRepository interface {
	Load(ctx context.Context) error
	All() []Invoice
	FindByID(id uuid.UUID) (*Invoice, error)
	Search(query string) []Invoice
	Add(ctx context.Context, invoice *Invoice) error
	Update(ctx context.Context, id uuid.UUID, mutate func(*Invoice) error) (*Invoice, error)
	Remove(ctx context.Context, id uuid.UUID) error
}
