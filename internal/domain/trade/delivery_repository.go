package trade

import (
	"context"

	"github.com/google/uuid"
)

// DeliveryRepository is the store contract for the delivery collection
type DeliveryRepository interface {
	Load(ctx context.Context) error
	All() []Delivery
	FindByID(id uuid.UUID) (*Delivery, error)
	Search(query string) []Delivery
	Add(ctx context.Context, delivery *Delivery) error
	Update(ctx context.Context, id uuid.UUID, mutate func(*Delivery) error) (*Delivery, error)
	Remove(ctx context.Context, id uuid.UUID) error
}
