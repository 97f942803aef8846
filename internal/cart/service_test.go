package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kinsha-retail/kinsha_shop/internal/identity"
)

func newFixture(t *testing.T) (*Service, identity.User) {
	t.Helper()
	repo := identity.NewMemoryRepository()
	user := identity.User{
		ID:        "u1",
		Email:     "u1@example.com",
		Cart:      identity.Cart{},
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return NewService(repo), user
}

func TestAddItemIsAdditive(t *testing.T) {
	svc, user := newFixture(t)
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, user.ID, 5, 3)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cart.Quantity("5") != 3 {
		t.Fatalf("expected 3, got %d", cart.Quantity("5"))
	}

	cart, err = svc.AddItem(ctx, user.ID, 5, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cart.Quantity("5") != 5 {
		t.Fatalf("expected additive 5, got %d", cart.Quantity("5"))
	}
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	svc, user := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name      string
		productID int64
		quantity  int64
	}{
		{"missing product", 0, 1},
		{"zero quantity", 5, 0},
		{"negative quantity", 5, -2},
	}
	for _, tc := range cases {
		if _, err := svc.AddItem(ctx, user.ID, tc.productID, tc.quantity); !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("%s: expected ErrInvalidItem, got %v", tc.name, err)
		}
	}
}

func TestAddItemUnknownUser(t *testing.T) {
	svc, _ := newFixture(t)
	if _, err := svc.AddItem(context.Background(), "missing", 5, 1); !errors.Is(err, identity.ErrNotFound) {
		t.Fatalf("expected identity.ErrNotFound, got %v", err)
	}
}

func TestGetReturnsCurrentCart(t *testing.T) {
	svc, user := newFixture(t)
	ctx := context.Background()

	cart, err := svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cart == nil {
		t.Fatal("expected non-nil cart")
	}
	if len(cart) != 0 {
		t.Fatalf("expected empty cart, got %#v", cart)
	}

	if _, err := svc.AddItem(ctx, user.ID, 12, 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err = svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cart.Quantity("12") != 4 {
		t.Fatalf("expected 4, got %d", cart.Quantity("12"))
	}
}

func TestGetUnknownUser(t *testing.T) {
	svc, _ := newFixture(t)
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, identity.ErrNotFound) {
		t.Fatalf("expected identity.ErrNotFound, got %v", err)
	}
}
