package redis

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
)

func TestCartStore_SaveAndGet(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewCartStore(client, zerolog.Nop())

	cart := &domain.Cart{
		UserID: "cust_1",
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}
	if err := store.Save(context.Background(), cart); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := store.Get(context.Background(), "cust_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].ProductID != "p1" || got.Items[0].Quantity != 2 {
		t.Fatalf("loaded cart does not match saved one: %+v", got)
	}
}

func TestCartStore_GetMissingReturnsEmpty(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewCartStore(client, zerolog.Nop())

	got, err := store.Get(context.Background(), "cust_1")
	if err != nil {
		t.Fatalf("missing cart must not be an error: %v", err)
	}
	if got.UserID != "cust_1" || !got.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", got)
	}
}

func TestCartStore_CorruptPayloadPurged(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewCartStore(client, zerolog.Nop())

	if err := mr.Set("cart:cust_1", "][not json"); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	got, err := store.Get(context.Background(), "cust_1")
	if err != nil {
		t.Fatalf("corrupt cart must not surface an error: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("corrupt cart must load as empty, got %+v", got)
	}
	if mr.Exists("cart:cust_1") {
		t.Fatal("corrupt cart key must be purged")
	}
}

func TestCartStore_ClearIdempotent(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewCartStore(client, zerolog.Nop())

	if err := store.Save(context.Background(), &domain.Cart{UserID: "cust_1", Items: []domain.CartItem{{ProductID: "p1", Quantity: 1}}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := store.Clear(context.Background(), "cust_1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if err := store.Clear(context.Background(), "cust_1"); err != nil {
		t.Fatalf("clearing an already-cleared cart must not fail: %v", err)
	}

	got, err := store.Get(context.Background(), "cust_1")
	if err != nil || !got.IsEmpty() {
		t.Fatalf("expected empty cart after clear, got %+v, %v", got, err)
	}
}
