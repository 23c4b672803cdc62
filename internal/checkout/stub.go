package checkout

import (
	"context"
	"fmt"

	"github.com/nikolayk812/shoestore/internal/domain"
	"github.com/nikolayk812/shoestore/internal/port"
	"go.uber.org/zap"
)

// Stub stands in for a payment provider. It never leaves the process.
type Stub struct {
	enabled bool
	logger  *zap.Logger
}

func NewStub(enabled bool, logger *zap.Logger) port.CheckoutGateway {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Stub{
		enabled: enabled,
		logger:  logger,
	}
}

func (s *Stub) Submit(ctx context.Context, req domain.CheckoutRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ctx.Err: %w", err)
	}

	if !s.enabled {
		s.logger.Info("checkout requested while payments are disabled", zap.Stringer("request_id", req.ID))
		return domain.ErrCheckoutUnavailable
	}

	if len(req.Items) == 0 {
		return domain.ErrEmptyCart
	}

	s.logger.Info("checkout accepted",
		zap.Stringer("request_id", req.ID),
		zap.Int("lines", len(req.Items)),
		zap.String("shipping_method", string(req.Shipping.Method)),
		zap.Stringer("shipping_cost", req.Shipping.Cost))

	return nil
}
