package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const (
	newCollectionSize = 10
	popularCategory   = "wigs"
	popularSize       = 4
)

// ErrInvalidProduct indicates a product submission missing required fields.
var ErrInvalidProduct = errors.New("product name is required")

// ImageRemover deletes a stored product image by its public URL.
type ImageRemover interface {
	Remove(ctx context.Context, url string) error
}

// Service owns catalog reads and writes.
type Service struct {
	repo   Repository
	images ImageRemover
	logger *slog.Logger
}

// NewService builds a catalog service. The image remover may be nil when no
// media store is configured.
func NewService(repo Repository, images ImageRemover, logger *slog.Logger) *Service {
	return &Service{repo: repo, images: images, logger: logger}
}

// AddInput captures an admin product submission.
type AddInput struct {
	Name     string
	Image    string
	Category string
	NewPrice float64
	OldPrice float64
}

// Add stores a new product with the next sequential id.
func (s *Service) Add(ctx context.Context, in AddInput) (Product, error) {
	if in.Name == "" {
		return Product{}, ErrInvalidProduct
	}
	return s.repo.Create(ctx, Product{
		Name:      in.Name,
		Image:     in.Image,
		Category:  in.Category,
		NewPrice:  in.NewPrice,
		OldPrice:  in.OldPrice,
		Date:      time.Now().UTC(),
		Available: true,
	})
}

// Remove deletes a product and, best effort, its stored image.
func (s *Service) Remove(ctx context.Context, id int64) (Product, error) {
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if s.images != nil && p.Image != "" {
		if err := s.images.Remove(ctx, p.Image); err != nil && s.logger != nil {
			s.logger.Warn("remove product image", "product_id", p.ID, "image", p.Image, "error", err)
		}
	}
	return p, nil
}

// All lists the whole catalog.
func (s *Service) All(ctx context.Context) ([]Product, error) {
	return s.repo.All(ctx)
}

// NewCollections returns the latest additions for the storefront strip.
func (s *Service) NewCollections(ctx context.Context) ([]Product, error) {
	return s.repo.Latest(ctx, newCollectionSize)
}

// Popular returns the featured products of the flagship category.
func (s *Service) Popular(ctx context.Context) ([]Product, error) {
	return s.repo.ByCategory(ctx, popularCategory, popularSize)
}
