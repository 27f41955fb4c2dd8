package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/api/metrics"
	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, orderNumber, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, orderNumber, status string, ts time.Time) error
}

type paymentEventService struct {
	orders ports.OrderRepository
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewPaymentEventService returns a PaymentEventService implementation.
func NewPaymentEventService(orders ports.OrderRepository, dedup DedupChecker, log zerolog.Logger) ports.PaymentEventService {
	return &paymentEventService{orders: orders, dedup: dedup, log: log}
}

// Process validates, deduplicates, and applies a single gateway event.
func (s *paymentEventService) Process(ctx context.Context, in ports.PaymentEventInput) error {
	started := time.Now()
	newStatus := domain.OrderStatus(in.Status)

	// 1. Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.OrderNumber, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("order_number", in.OrderNumber).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.PaymentEventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("order_number", in.OrderNumber).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}
	metrics.PaymentEventsDedupTotal.WithLabelValues("miss").Inc()

	// 2. Find the order (gateway events carry no customer scope).
	order, err := s.orders.FindByNumber(ctx, in.OrderNumber, "")
	if err != nil {
		metrics.PaymentEventsErrorsTotal.WithLabelValues("order_not_found").Inc()
		return fmt.Errorf("process payment event: %w", err)
	}

	// 3. Validate state machine transition.
	if !order.Status.CanTransitionTo(newStatus) {
		metrics.PaymentEventsErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("process payment event: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, newStatus)
	}

	// 4. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.OrderNumber, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("order_number", in.OrderNumber).Msg("failed to set dedup key")
	}

	// 5. Persist the transition.
	notes := fmt.Sprintf("gateway event from %s", in.Source)
	if err := s.orders.UpdateStatus(ctx, in.OrderNumber, newStatus, notes); err != nil {
		metrics.PaymentEventsErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("process payment event: %w", err)
	}

	metrics.PaymentEventsProcessedTotal.WithLabelValues(in.Status, in.Source).Inc()
	s.log.Info().
		Str("order_number", in.OrderNumber).
		Str("status", in.Status).
		Str("source", in.Source).
		Dur("took", time.Since(started)).
		Msg("payment event applied")

	return nil
}
