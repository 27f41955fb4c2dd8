package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/ports"
)

// PromotionHandler handles discount promotion endpoints.
type PromotionHandler struct {
	service ports.PromotionService
}

// NewPromotionHandler creates a PromotionHandler.
func NewPromotionHandler(service ports.PromotionService) *PromotionHandler {
	return &PromotionHandler{service: service}
}

type createPromotionRequest struct {
	Code            string    `json:"code"             validate:"required,max=32"`
	Description     string    `json:"description"      validate:"max=500"`
	DiscountPercent float64   `json:"discount_percent" validate:"required,gte=1,max=100"`
	StartsAt        time.Time `json:"starts_at"        validate:"required"`
	EndsAt          time.Time `json:"ends_at"          validate:"required"`
}

// Create handles POST /v1/admin/promotions.
//
// @Summary      Create a promotion code
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPromotionRequest  true  "Promotion"
// @Success      201   {object}  domain.Promotion
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/promotions [post]
func (h *PromotionHandler) Create(c echo.Context) error {
	var req createPromotionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	promo, err := h.service.Create(c.Request().Context(), ports.CreatePromotionInput{
		Code:            req.Code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, promo)
}

// ListActive handles GET /v1/promotions — promotions redeemable right now.
func (h *PromotionHandler) ListActive(c echo.Context) error {
	promos, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, promos)
}

// List handles GET /v1/admin/promotions — every promotion, active or not.
func (h *PromotionHandler) List(c echo.Context) error {
	promos, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, promos)
}

// Delete handles DELETE /v1/admin/promotions/:id.
func (h *PromotionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
