package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

func TestProductService_Update_Ownership(t *testing.T) {
	products := newStubProductRepo()
	seedProduct(products, "p1", "seller_1", 10, 5)
	svc := NewProductService(products, zerolog.Nop())

	input := ports.CreateProductInput{Name: "Renamed", Price: 12}

	owner := &domain.Identity{ID: "seller_1", Role: domain.RoleSeller}
	updated, err := svc.Update(context.Background(), "p1", input, owner)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "Renamed" || updated.Price != 12 {
		t.Fatalf("update not applied: %+v", updated)
	}

	other := &domain.Identity{ID: "seller_2", Role: domain.RoleSeller}
	if _, err := svc.Update(context.Background(), "p1", input, other); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign seller must be forbidden, got %v", err)
	}

	customer := &domain.Identity{ID: "cust_1", Role: domain.RoleCustomer}
	if _, err := svc.Update(context.Background(), "p1", input, customer); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("customers must be forbidden, got %v", err)
	}

	admin := &domain.Identity{ID: "admin_1", Role: domain.RoleAdmin}
	if _, err := svc.Update(context.Background(), "p1", input, admin); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestProductService_Delete_Ownership(t *testing.T) {
	products := newStubProductRepo()
	seedProduct(products, "p1", "seller_1", 10, 5)
	svc := NewProductService(products, zerolog.Nop())

	other := &domain.Identity{ID: "seller_2", Role: domain.RoleSeller}
	if err := svc.Delete(context.Background(), "p1", other); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign seller must be forbidden, got %v", err)
	}

	owner := &domain.Identity{ID: "seller_1", Role: domain.RoleSeller}
	if err := svc.Delete(context.Background(), "p1", owner); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), "p1"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("product should be gone, got %v", err)
	}
}

func TestProductService_List_ClampsPagination(t *testing.T) {
	products := newStubProductRepo()
	seedProduct(products, "p1", "seller_1", 10, 5)
	svc := NewProductService(products, zerolog.Nop())

	result, err := svc.List(context.Background(), ports.ListProductsFilter{Page: -3, Limit: 9999})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Page != 1 || result.Limit != 20 {
		t.Fatalf("pagination not clamped: page=%d limit=%d", result.Page, result.Limit)
	}
	if result.Total != 1 || result.TotalPages != 1 {
		t.Fatalf("unexpected totals: %+v", result)
	}
}
