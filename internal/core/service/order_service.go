package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/api/metrics"
	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

type OrderService struct {
	orders   ports.OrderRepository
	carts    ports.CartStore
	products ports.ProductRepository
	promos   ports.PromotionRepository
	log      zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, carts ports.CartStore, products ports.ProductRepository, promos ports.PromotionRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, carts: carts, products: products, promos: promos, log: log}
}

// Checkout turns the customer's cart into a pending order: lines are priced
// and snapshotted, stock is decremented, an active promotion code is applied,
// and the cart is cleared on success.
func (s *OrderService) Checkout(ctx context.Context, input ports.CheckoutInput) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrCartEmpty
	}

	now := time.Now().UTC()

	var discountPercent float64
	if input.PromoCode != "" {
		promo, err := s.promos.FindByCode(ctx, input.PromoCode)
		if err != nil {
			return nil, err
		}
		if !promo.ActiveAt(now) {
			return nil, domain.ErrPromotionInactive
		}
		discountPercent = promo.DiscountPercent
	}

	// restoreStock unwinds the decrements of lines reserved so far when a
	// later step fails, so an aborted checkout never shrinks inventory.
	lines := make([]domain.OrderLine, 0, len(cart.Items))
	restoreStock := func() {
		for _, l := range lines {
			if err := s.products.IncrementStock(ctx, l.ProductID, l.Quantity); err != nil {
				s.log.Error().Err(err).Str("product_id", l.ProductID).Int("quantity", l.Quantity).Msg("stock restore after aborted checkout failed")
			}
		}
	}

	var subtotal float64
	for _, item := range cart.Items {
		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			restoreStock()
			return nil, err
		}
		if err := s.products.DecrementStock(ctx, p.ID, item.Quantity); err != nil {
			restoreStock()
			return nil, err
		}
		lines = append(lines, domain.OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			SellerID:  p.SellerID,
			UnitPrice: p.Price,
			Quantity:  item.Quantity,
		})
		subtotal += p.Price * float64(item.Quantity)
	}

	discount := subtotal * discountPercent / 100
	order := &domain.Order{
		OrderNumber: generateOrderNumber(),
		CustomerID:  input.CustomerID,
		Lines:       lines,
		Subtotal:    subtotal,
		Discount:    discount,
		Total:       subtotal - discount,
		PromoCode:   input.PromoCode,
		Status:      domain.OrderPending,
		Shipping: domain.ShippingAddress{
			Address: input.Shipping.Address,
			City:    input.Shipping.City,
			ZipCode: input.Shipping.ZipCode,
		},
		StatusHistory: []domain.OrderStatusEntry{{Status: domain.OrderPending, Timestamp: now}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("customer_id", input.CustomerID).Msg("failed to create order")
		restoreStock()
		return nil, err
	}

	if err := s.carts.Clear(ctx, input.CustomerID); err != nil {
		s.log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("cart clear after checkout failed")
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Str("order_number", order.OrderNumber).Str("customer_id", input.CustomerID).Float64("total", order.Total).Msg("order created")

	return order, nil
}

// Get retrieves a single order, scoped by role: customers see only their own
// orders, sellers only orders containing their products, admins everything.
func (s *OrderService) Get(ctx context.Context, input ports.GetOrderInput) (*domain.Order, error) {
	customerFilter := ""
	if input.Role == domain.RoleCustomer {
		customerFilter = input.ActorID
	}

	order, err := s.orders.FindByNumber(ctx, input.OrderNumber, customerFilter)
	if err != nil {
		return nil, err
	}

	if input.Role == domain.RoleSeller && !order.ContainsSeller(input.ActorID) {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// List returns orders scoped by role with the same visibility rules as Get.
func (s *OrderService) List(ctx context.Context, input ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 20
	}

	filter := ports.ListOrdersFilter{Status: input.Status, Page: input.Page, Limit: input.Limit}
	switch input.Role {
	case domain.RoleCustomer:
		filter.CustomerID = input.ActorID
	case domain.RoleSeller:
		filter.SellerID = input.ActorID
	}

	items, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListOrdersResult{
		Items:      items,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(input.Limit))),
	}, nil
}

// UpdateStatus applies a status transition, enforcing the order state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, orderNumber string, status string, notes string) (*domain.Order, error) {
	next := domain.OrderStatus(status)

	order, err := s.orders.FindByNumber(ctx, orderNumber, "")
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := s.orders.UpdateStatus(ctx, orderNumber, next, notes); err != nil {
		return nil, err
	}

	order.Status = next
	order.StatusHistory = append(order.StatusHistory, domain.OrderStatusEntry{
		Status:    next,
		Timestamp: time.Now().UTC(),
		Notes:     notes,
	})
	return order, nil
}

// generateOrderNumber returns a unique order number in the format SE-XXXXXXXX.
func generateOrderNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("SE-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("SE-%08X", b)
}
