package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

// AdminUserHandler handles the administrator account management endpoints.
type AdminUserHandler struct {
	authService ports.AuthService
}

// NewAdminUserHandler creates an AdminUserHandler.
func NewAdminUserHandler(authService ports.AuthService) *AdminUserHandler {
	return &AdminUserHandler{authService: authService}
}

type listUsersResponse struct {
	Items      []*domain.User `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// List handles GET /v1/admin/users with page/limit pagination.
//
// @Summary      List registered accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"    default(1)
// @Param        limit  query     int  false  "Items per page" default(20)
// @Success      200    {object}  listUsersResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminUserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.authService.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Delete handles DELETE /v1/admin/users/:id.
func (h *AdminUserHandler) Delete(c echo.Context) error {
	if err := h.authService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin seller customer"`
}

// ChangeRole handles PUT /v1/admin/users/:id/role.
func (h *AdminUserHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.ChangeRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
