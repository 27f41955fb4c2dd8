package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

// OrderHandler handles checkout and order tracking requests.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Checkout handles POST /v1/customer/orders — turns the cart into an order.
//
// @Summary      Checkout the current cart
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkoutRequest  true  "Checkout details"
// @Success      201   {object}  orderResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/customer/orders [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.Checkout(c.Request().Context(), ports.CheckoutInput{
		CustomerID: identity.ID,
		PromoCode:  req.PromoCode,
		Shipping: ports.ShippingInput{
			Address: req.Shipping.Address,
			City:    req.Shipping.City,
			ZipCode: req.Shipping.ZipCode,
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles the order listings for every role: customers see their own
// orders, sellers orders containing their products, admins everything.
func (h *OrderHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	input := ports.ListOrdersInput{
		Role:    identity.Role,
		ActorID: identity.ID,
		Status:  c.QueryParam("status"),
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	items := make([]orderResponse, 0, len(result.Items))
	for _, o := range result.Items {
		items = append(items, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, listOrdersResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles single-order lookups with the same role scoping as List.
//
// @Summary      Get an order by number
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_number  path      string  true  "Order number (e.g. SE-7A8B9C2D)"
// @Success      200           {object}  orderResponse
// @Failure      404           {object}  errorResponse
// @Router       /v1/customer/orders/{order_number} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), ports.GetOrderInput{
		OrderNumber: c.Param("order_number"),
		Role:        identity.Role,
		ActorID:     identity.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PUT /v1/admin/orders/:order_number/status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("order_number"), req.Status, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

func toOrderResponse(o *domain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	history := make([]orderStatusEntryResponse, 0, len(o.StatusHistory))
	for _, e := range o.StatusHistory {
		history = append(history, orderStatusEntryResponse{
			Status:    string(e.Status),
			Timestamp: e.Timestamp,
			Notes:     e.Notes,
		})
	}
	return orderResponse{
		OrderNumber:   o.OrderNumber,
		Status:        string(o.Status),
		Lines:         lines,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Total:         o.Total,
		PromoCode:     o.PromoCode,
		StatusHistory: history,
		CreatedAt:     o.CreatedAt,
	}
}
