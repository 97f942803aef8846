package catalog

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	products []Product
	nextID   int64
}

// NewMemoryRepository builds an in-memory catalog for tests and local runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1}
}

func (r *memoryRepository) Create(_ context.Context, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *memoryRepository) All(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepository) Latest(_ context.Context, limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	start := len(r.products) - limit
	if start < 0 {
		start = 0
	}
	out := make([]Product, len(r.products)-start)
	copy(out, r.products[start:])
	return out, nil
}

func (r *memoryRepository) ByCategory(_ context.Context, category string, limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Product{}
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
