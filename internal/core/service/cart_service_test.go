package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
)

type stubWishlistStore struct {
	wishes map[string][]string
}

func newStubWishlistStore() *stubWishlistStore {
	return &stubWishlistStore{wishes: make(map[string][]string)}
}

func (s *stubWishlistStore) Add(_ context.Context, userID, productID string) error {
	for _, id := range s.wishes[userID] {
		if id == productID {
			return nil
		}
	}
	s.wishes[userID] = append(s.wishes[userID], productID)
	return nil
}

func (s *stubWishlistStore) Remove(_ context.Context, userID, productID string) error {
	ids := s.wishes[userID]
	for i, id := range ids {
		if id == productID {
			s.wishes[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubWishlistStore) List(_ context.Context, userID string) ([]string, error) {
	return s.wishes[userID], nil
}

func newCartFixture() (*CartService, *stubCartStore, *stubProductRepo, *stubWishlistStore) {
	carts := newStubCartStore()
	products := newStubProductRepo()
	wishes := newStubWishlistStore()
	svc := NewCartService(carts, wishes, products, zerolog.Nop())
	return svc, carts, products, wishes
}

func TestCartService_SetItem_AddsAndPrices(t *testing.T) {
	svc, _, products, _ := newCartFixture()
	seedProduct(products, "p1", "seller_1", 10.5, 10)

	view, err := svc.SetItem(context.Background(), "cust_1", "p1", 3)
	if err != nil {
		t.Fatalf("SetItem returned error: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(view.Items))
	}
	line := view.Items[0]
	if line.Quantity != 3 || line.LineTotal != 31.5 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if view.Subtotal != 31.5 {
		t.Fatalf("unexpected subtotal: %v", view.Subtotal)
	}
}

func TestCartService_SetItem_ZeroRemovesLine(t *testing.T) {
	svc, _, products, _ := newCartFixture()
	seedProduct(products, "p1", "seller_1", 5, 10)

	if _, err := svc.SetItem(context.Background(), "cust_1", "p1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.SetItem(context.Background(), "cust_1", "p1", 0)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("line should be removed, got %+v", view.Items)
	}
}

func TestCartService_SetItem_UnknownProduct(t *testing.T) {
	svc, _, _, _ := newCartFixture()

	if _, err := svc.SetItem(context.Background(), "cust_1", "ghost", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartService_Get_DropsVanishedProducts(t *testing.T) {
	svc, carts, products, _ := newCartFixture()
	seedProduct(products, "p1", "seller_1", 10, 10)
	carts.carts["cust_1"] = &domain.Cart{
		UserID: "cust_1",
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "vanished", Quantity: 2},
		},
	}

	view, err := svc.Get(context.Background(), "cust_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ProductID != "p1" {
		t.Fatalf("vanished product should be dropped, got %+v", view.Items)
	}
	if view.Subtotal != 10 {
		t.Fatalf("unexpected subtotal: %v", view.Subtotal)
	}
}

func TestCartService_Wishlist(t *testing.T) {
	svc, _, products, _ := newCartFixture()
	seedProduct(products, "p1", "seller_1", 10, 10)

	if err := svc.AddWish(context.Background(), "cust_1", "ghost"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("wishing an unknown product must fail, got %v", err)
	}
	if err := svc.AddWish(context.Background(), "cust_1", "p1"); err != nil {
		t.Fatalf("AddWish failed: %v", err)
	}

	wished, err := svc.Wishlist(context.Background(), "cust_1")
	if err != nil {
		t.Fatalf("Wishlist failed: %v", err)
	}
	if len(wished) != 1 || wished[0].ID != "p1" {
		t.Fatalf("unexpected wishlist: %+v", wished)
	}

	if err := svc.RemoveWish(context.Background(), "cust_1", "p1"); err != nil {
		t.Fatalf("RemoveWish failed: %v", err)
	}
	wished, _ = svc.Wishlist(context.Background(), "cust_1")
	if len(wished) != 0 {
		t.Fatalf("wishlist should be empty, got %+v", wished)
	}
}
