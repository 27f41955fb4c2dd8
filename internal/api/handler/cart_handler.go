package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/ports"
)

// CartHandler handles cart and wishlist requests for customers.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type setCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"gte=0"`
}

type wishRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// Get handles GET /v1/customer/cart.
//
// @Summary      Get the current cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.CartView
// @Router       /v1/customer/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.service.Get(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// SetItem handles PUT /v1/customer/cart/items — sets one line's quantity.
// A quantity of zero removes the line.
func (h *CartHandler) SetItem(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req setCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.service.SetItem(c.Request().Context(), identity.ID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Clear handles DELETE /v1/customer/cart.
func (h *CartHandler) Clear(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Clear(c.Request().Context(), identity.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Wishlist handles GET /v1/customer/wishlist.
func (h *CartHandler) Wishlist(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	products, err := h.service.Wishlist(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	items := make([]productResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// AddWish handles POST /v1/customer/wishlist.
func (h *CartHandler) AddWish(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req wishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.AddWish(c.Request().Context(), identity.ID, req.ProductID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveWish handles DELETE /v1/customer/wishlist/:product_id.
func (h *CartHandler) RemoveWish(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveWish(c.Request().Context(), identity.ID, c.Param("product_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
