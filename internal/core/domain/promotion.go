package domain

import (
	"errors"
	"time"
)

var ErrPromotionNotFound = errors.New("promotion not found")
var ErrPromotionInactive = errors.New("promotion is not active")

// Promotion is a percentage discount redeemable by code within a time window.
type Promotion struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Code            string    `json:"code" bson:"code"`
	Description     string    `json:"description" bson:"description"`
	DiscountPercent float64   `json:"discount_percent" bson:"discount_percent"`
	StartsAt        time.Time `json:"starts_at" bson:"starts_at"`
	EndsAt          time.Time `json:"ends_at" bson:"ends_at"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// ActiveAt reports whether the promotion can be redeemed at t.
func (p *Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartsAt) && !t.After(p.EndsAt)
}
