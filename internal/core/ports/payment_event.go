package ports

import (
	"context"
	"time"
)

// PaymentEventInput is a status callback received from the payment gateway.
type PaymentEventInput struct {
	OrderNumber string
	Status      string
	Timestamp   time.Time
	Source      string
}

// PaymentEventService processes gateway callbacks into order status transitions.
type PaymentEventService interface {
	Process(ctx context.Context, input PaymentEventInput) error
}
