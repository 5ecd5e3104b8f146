// Package persistence implements the entity stores: each store keeps the
// canonical in-memory collection and mirrors it to the storage adapter as a
// single JSON document per versioned key.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bizmate/backend/internal/domain/shared"
	"github.com/bizmate/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
)

// entityPtr constrains collection elements to identifiable domain entities
type entityPtr[T any] interface {
	*T
	GetID() uuid.UUID
}

// Collection is the generic entity store. Mutations compute the new list,
// persist it, and only then swap the in-memory reference; a persistence
// failure leaves both the storage and the in-memory state unchanged.
type Collection[T any, PT entityPtr[T]] struct {
	store      storage.Store
	key        string
	seed       func() []T
	searchText func(PT) []string

	mu    sync.RWMutex
	items []T
}

// NewCollection creates a collection store persisted under key.
// seed supplies the fallback data when the key is absent; searchText lists
// the fields matched by Search.
func NewCollection[T any, PT entityPtr[T]](store storage.Store, key string, seed func() []T, searchText func(PT) []string) *Collection[T, PT] {
	return &Collection[T, PT]{
		store:      store,
		key:        key,
		seed:       seed,
		searchText: searchText,
	}
}

// Load replaces the in-memory collection from storage, falling back to the
// seed set when the key is absent. A non-empty seed is written back so every
// later load reads the same collection, ids included. On any storage or
// decode error the previous in-memory collection is left untouched.
func (c *Collection[T, PT]) Load(ctx context.Context) error {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return shared.NewDomainError("STORAGE_FAILURE", fmt.Sprintf("Failed to load %s: %v", c.key, err))
	}

	var items []T
	if !ok {
		items = c.seed()
		if len(items) > 0 {
			if err := c.persist(ctx, items); err != nil {
				return err
			}
		}
	} else if err := json.Unmarshal(raw, &items); err != nil {
		return shared.NewDomainError("STORAGE_FAILURE", fmt.Sprintf("Failed to decode %s: %v", c.key, err))
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	return nil
}

// All returns a copy of the in-memory collection
func (c *Collection[T, PT]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// FindByID returns a copy of the entity with the given id
func (c *Collection[T, PT]) FindByID(id uuid.UUID) (PT, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if PT(&c.items[i]).GetID() == id {
			item := c.items[i]
			return &item, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Search returns entities whose configured text fields contain the query,
// ignoring case. An empty query returns everything.
func (c *Collection[T, PT]) Search(query string) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for i := range c.items {
		for _, field := range c.searchText(PT(&c.items[i])) {
			if shared.ContainsFold(field, query) {
				out = append(out, c.items[i])
				break
			}
		}
	}
	return out
}

// Add appends the entity and persists the collection
func (c *Collection[T, PT]) Add(ctx context.Context, entity PT) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	next = append(next, *entity)

	if err := c.persist(ctx, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// Update applies mutate to the entity with the given id and persists the
// collection. Returns shared.ErrNotFound for an unknown id.
func (c *Collection[T, PT]) Update(ctx context.Context, id uuid.UUID, mutate func(PT) error) (PT, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]T, len(c.items))
	copy(next, c.items)

	for i := range next {
		if PT(&next[i]).GetID() != id {
			continue
		}
		if err := mutate(PT(&next[i])); err != nil {
			return nil, err
		}
		if err := c.persist(ctx, next); err != nil {
			return nil, err
		}
		c.items = next
		item := next[i]
		return &item, nil
	}

	return nil, shared.ErrNotFound
}

// Remove filters the entity out and persists the remainder. Returns
// shared.ErrNotFound for an unknown id.
func (c *Collection[T, PT]) Remove(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]T, 0, len(c.items))
	found := false
	for i := range c.items {
		if PT(&c.items[i]).GetID() == id {
			found = true
			continue
		}
		next = append(next, c.items[i])
	}
	if !found {
		return shared.ErrNotFound
	}

	if err := c.persist(ctx, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

func (c *Collection[T, PT]) persist(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return shared.NewDomainError("STORAGE_FAILURE", fmt.Sprintf("Failed to encode %s: %v", c.key, err))
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return shared.NewDomainError("STORAGE_FAILURE", fmt.Sprintf("Failed to persist %s: %v", c.key, err))
	}
	return nil
}
