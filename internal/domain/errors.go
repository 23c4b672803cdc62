package domain

import "errors"

var (
	ErrInvalidSelection      = errors.New("size and color must be selected")
	ErrItemNotFound          = errors.New("cart item not found")
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrCheckoutUnavailable   = errors.New("checkout is not available")
)
