package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// ShellHandler serves the page descriptors behind the navigable shell
// routes. Each response tells the client which layout wraps the page and
// which navigation entries that layout carries; the gate middleware has
// already decided whether the caller may be here.
type ShellHandler struct{}

// NewShellHandler creates a ShellHandler.
func NewShellHandler() *ShellHandler {
	return &ShellHandler{}
}

type pageResponse struct {
	Page     string           `json:"page"`
	Layout   string           `json:"layout"`
	Nav      []string         `json:"nav"`
	Identity *domain.Identity `json:"identity,omitempty"`
}

// navFor returns the navigation entries for each layout shell.
func navFor(layout string) []string {
	switch layout {
	case "admin":
		return []string{"/admin", "/admin/users", "/admin/products", "/admin/orders", "/admin/promotions"}
	case "seller":
		return []string{"/seller", "/seller/products", "/seller/orders"}
	case "customer":
		return []string{"/", "/products", "/customer/cart", "/customer/orders", "/customer/wishlist"}
	default:
		return []string{"/", "/products", "/login", "/register"}
	}
}

func (h *ShellHandler) page(c echo.Context, name string) error {
	identity, _ := c.Get("identity").(*domain.Identity)
	layout := domain.RoleAnonymous.Layout()
	if identity != nil {
		layout = identity.Role.Layout()
	}
	return c.JSON(http.StatusOK, pageResponse{
		Page:     name,
		Layout:   layout,
		Nav:      navFor(layout),
		Identity: identity,
	})
}

// Home handles GET / — the storefront landing page. Also the target of the
// catch-all redirect for unknown paths.
func (h *ShellHandler) Home(c echo.Context) error {
	return h.page(c, "home")
}

// Login handles GET /login.
func (h *ShellHandler) Login(c echo.Context) error {
	return h.page(c, "login")
}

// Register handles GET /register.
func (h *ShellHandler) Register(c echo.Context) error {
	return h.page(c, "register")
}

// Products handles GET /products — public catalog browsing.
func (h *ShellHandler) Products(c echo.Context) error {
	return h.page(c, "products")
}

// AdminDashboard handles GET /admin.
func (h *ShellHandler) AdminDashboard(c echo.Context) error {
	return h.page(c, "admin-dashboard")
}

// SellerDashboard handles GET /seller.
func (h *ShellHandler) SellerDashboard(c echo.Context) error {
	return h.page(c, "seller-dashboard")
}

// CustomerDashboard handles GET /customer.
func (h *ShellHandler) CustomerDashboard(c echo.Context) error {
	return h.page(c, "customer-dashboard")
}
