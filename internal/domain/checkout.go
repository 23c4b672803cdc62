package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutRequest is the payload handed to the external checkout collaborator.
type CheckoutRequest struct {
	ID       uuid.UUID        `json:"id"`
	Currency string           `json:"currency"`
	Items    []CheckoutItem   `json:"items"`
	Shipping CheckoutShipping `json:"shipping"`
}

type CheckoutItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type CheckoutShipping struct {
	Method ShippingMethod  `json:"method"`
	Cost   decimal.Decimal `json:"cost"`
}
