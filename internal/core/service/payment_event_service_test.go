package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

type stubDedup struct {
	marked   map[string]bool
	checkErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{marked: make(map[string]bool)}
}

func dedupKey(orderNumber, status string, ts time.Time) string {
	return orderNumber + "|" + status + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, orderNumber, status string, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.marked[dedupKey(orderNumber, status, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, orderNumber, status string, ts time.Time) error {
	d.marked[dedupKey(orderNumber, status, ts)] = true
	return nil
}

func paymentEvent(status string) ports.PaymentEventInput {
	return ports.PaymentEventInput{
		OrderNumber: "SE-1",
		Status:      status,
		Timestamp:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Source:      "stripe",
	}
}

func TestPaymentEventService_AppliesTransition(t *testing.T) {
	orders := newStubOrderRepo()
	orders.orders["SE-1"] = &domain.Order{OrderNumber: "SE-1", Status: domain.OrderPending}
	svc := NewPaymentEventService(orders, newStubDedup(), zerolog.Nop())

	if err := svc.Process(context.Background(), paymentEvent("paid")); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if orders.orders["SE-1"].Status != domain.OrderPaid {
		t.Fatalf("expected paid, got %s", orders.orders["SE-1"].Status)
	}
	history := orders.orders["SE-1"].StatusHistory
	if len(history) != 1 || history[0].Notes != "gateway event from stripe" {
		t.Fatalf("unexpected status history: %+v", history)
	}
}

func TestPaymentEventService_DuplicateSkipped(t *testing.T) {
	orders := newStubOrderRepo()
	orders.orders["SE-1"] = &domain.Order{OrderNumber: "SE-1", Status: domain.OrderPending}
	svc := NewPaymentEventService(orders, newStubDedup(), zerolog.Nop())

	event := paymentEvent("paid")
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("first delivery failed: %v", err)
	}

	// Redelivery of the same event is silently dropped, even though the
	// transition paid→paid would otherwise be invalid.
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("duplicate delivery should be a no-op, got %v", err)
	}
	if orders.orders["SE-1"].Status != domain.OrderPaid {
		t.Fatalf("duplicate changed state: %s", orders.orders["SE-1"].Status)
	}
	if len(orders.orders["SE-1"].StatusHistory) != 1 {
		t.Fatalf("duplicate appended history: %+v", orders.orders["SE-1"].StatusHistory)
	}
}

func TestPaymentEventService_DedupFailureProcessesAnyway(t *testing.T) {
	orders := newStubOrderRepo()
	orders.orders["SE-1"] = &domain.Order{OrderNumber: "SE-1", Status: domain.OrderPending}
	dedup := newStubDedup()
	dedup.checkErr = errors.New("redis down")
	svc := NewPaymentEventService(orders, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), paymentEvent("paid")); err != nil {
		t.Fatalf("dedup failure must not block processing: %v", err)
	}
	if orders.orders["SE-1"].Status != domain.OrderPaid {
		t.Fatalf("expected paid, got %s", orders.orders["SE-1"].Status)
	}
}

func TestPaymentEventService_InvalidTransition(t *testing.T) {
	orders := newStubOrderRepo()
	orders.orders["SE-1"] = &domain.Order{OrderNumber: "SE-1", Status: domain.OrderDelivered}
	svc := NewPaymentEventService(orders, newStubDedup(), zerolog.Nop())

	err := svc.Process(context.Background(), paymentEvent("paid"))
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPaymentEventService_OrderNotFound(t *testing.T) {
	svc := NewPaymentEventService(newStubOrderRepo(), newStubDedup(), zerolog.Nop())

	err := svc.Process(context.Background(), paymentEvent("paid"))
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
