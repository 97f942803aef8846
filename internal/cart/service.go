package cart

import (
	"context"
	"errors"
	"strconv"

	"github.com/kinsha-retail/kinsha_shop/internal/identity"
)

// ErrInvalidItem indicates a missing product id or a non-positive quantity.
// Zero stays rejected because clients rely on that response today; negative
// quantities are rejected so the cart can never be driven below zero.
var ErrInvalidItem = errors.New("product id and quantity are required")

// Service owns cart reads and mutations on top of the identity store.
type Service struct {
	users identity.Repository
}

// NewService builds a cart service.
func NewService(users identity.Repository) *Service {
	return &Service{users: users}
}

// AddItem adds quantity to the user's cart entry for the product and returns
// the full updated cart. The increment is atomic at the storage layer, so
// concurrent adds for the same user never lose an update.
func (s *Service) AddItem(ctx context.Context, userID string, productID, quantity int64) (identity.Cart, error) {
	if productID <= 0 || quantity <= 0 {
		return nil, ErrInvalidItem
	}
	return s.users.IncrementCartItem(ctx, userID, strconv.FormatInt(productID, 10), quantity)
}

// Get returns the user's current cart, never nil.
func (s *Service) Get(ctx context.Context, userID string) (identity.Cart, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		return identity.Cart{}, nil
	}
	return user.Cart, nil
}
