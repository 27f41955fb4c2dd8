package domain

import "time"

// Review is a customer rating left on a product.
type Review struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ProductID    string    `json:"product_id" bson:"product_id"`
	CustomerID   string    `json:"customer_id" bson:"customer_id"`
	CustomerName string    `json:"customer_name" bson:"customer_name"`
	Rating       int       `json:"rating" bson:"rating"`
	Comment      string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
