package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/ports"
)

// ReviewHandler handles product review endpoints.
type ReviewHandler struct {
	service ports.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,gte=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// Create handles POST /v1/customer/products/:id/reviews.
//
// @Summary      Leave a review on a product
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Product ID"
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  domain.Review
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/customer/products/{id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		ProductID:    c.Param("id"),
		CustomerID:   identity.ID,
		CustomerName: identity.Name,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, review)
}

// ListByProduct handles GET /v1/products/:id/reviews.
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	reviews, err := h.service.ListByProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
