package port

import (
	"context"

	"github.com/nikolayk812/shoestore/internal/domain"
)

// CheckoutGateway is the external checkout collaborator. Its errors are opaque to callers.
type CheckoutGateway interface {
	Submit(ctx context.Context, req domain.CheckoutRequest) error
}
