package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/ports"
)

// PaymentDispatcher is the interface the handler uses to enqueue events.
type PaymentDispatcher interface {
	Enqueue(event ports.PaymentEventInput)
	EnqueueBatch(events []ports.PaymentEventInput)
}

// PaymentEventHandler handles payment gateway callback ingestion.
type PaymentEventHandler struct {
	dispatcher PaymentDispatcher
}

// NewPaymentEventHandler creates a PaymentEventHandler backed by the given dispatcher.
func NewPaymentEventHandler(dispatcher PaymentDispatcher) *PaymentEventHandler {
	return &PaymentEventHandler{dispatcher: dispatcher}
}

type paymentEventRequest struct {
	OrderNumber string    `json:"order_number" validate:"required"`
	Status      string    `json:"status"       validate:"required,oneof=paid shipped delivered cancelled"`
	Timestamp   time.Time `json:"timestamp"    validate:"required"`
	Source      string    `json:"source"       validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Receive handles POST /v1/payments/events — enqueues a single event, returns 202.
//
// @Summary      Ingest a single payment gateway event
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentEventRequest  true  "Payment event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/payments/events [post]
func (h *PaymentEventHandler) Receive(c echo.Context) error {
	var req paymentEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toPaymentEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch handles POST /v1/payments/events/batch — enqueues a batch, returns 202.
func (h *PaymentEventHandler) ReceiveBatch(c echo.Context) error {
	var reqs []paymentEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.PaymentEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toPaymentEventInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}

// toPaymentEventInput maps the HTTP request to the service DTO.
func toPaymentEventInput(r paymentEventRequest) ports.PaymentEventInput {
	return ports.PaymentEventInput{
		OrderNumber: r.OrderNumber,
		Status:      r.Status,
		Timestamp:   r.Timestamp,
		Source:      r.Source,
	}
}
