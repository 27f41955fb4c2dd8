package handler

import "time"

type shippingRequest struct {
	Address string `json:"address"  validate:"required"`
	City    string `json:"city"     validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

type checkoutRequest struct {
	PromoCode string          `json:"promo_code"`
	Shipping  shippingRequest `json:"shipping" validate:"required"`
}

type orderLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type orderStatusEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type orderResponse struct {
	OrderNumber   string                     `json:"order_number"`
	Status        string                     `json:"status"`
	Lines         []orderLineResponse        `json:"lines"`
	Subtotal      float64                    `json:"subtotal"`
	Discount      float64                    `json:"discount"`
	Total         float64                    `json:"total"`
	PromoCode     string                     `json:"promo_code,omitempty"`
	StatusHistory []orderStatusEntryResponse `json:"status_history"`
	CreatedAt     time.Time                  `json:"created_at"`
}

type listOrdersResponse struct {
	Data       []orderResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid shipped delivered cancelled"`
	Notes  string `json:"notes"`
}
