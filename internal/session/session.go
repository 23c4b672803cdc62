package session

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/shoestore/internal/cart"
	"github.com/nikolayk812/shoestore/internal/catalog"
	"github.com/nikolayk812/shoestore/internal/domain"
	"github.com/nikolayk812/shoestore/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Session is the state of one shopper: the active criteria and the cart.
// The catalog is shared read-only.
type Session struct {
	ID uuid.UUID

	products []domain.Product
	gateway  port.CheckoutGateway
	cart     *cart.Store
	logger   *zap.Logger

	mu       sync.RWMutex
	defaults catalog.Criteria
	criteria catalog.Criteria
}

func New(products []domain.Product, gateway port.CheckoutGateway, logger *zap.Logger) (*Session, error) {
	if gateway == nil {
		return nil, fmt.Errorf("gateway is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("uuid.NewRandom: %w", err)
	}
	logger = logger.With(zap.Stringer("session_id", id))

	store, err := cart.New(cart.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("cart.New: %w", err)
	}

	defaults := defaultCriteria(products)

	return &Session{
		ID:       id,
		products: slices.Clone(products),
		gateway:  gateway,
		cart:     store,
		logger:   logger,
		defaults: defaults,
		criteria: defaults,
	}, nil
}

// defaultCriteria raises the price ceiling when the catalog holds products
// above the stock default, so nothing is hidden before the shopper filters.
func defaultCriteria(products []domain.Product) catalog.Criteria {
	c := catalog.DefaultCriteria()
	return c.WithMaxPrice(decimal.Max(c.MaxPrice, catalog.PriceCeiling(products)))
}

func (s *Session) Criteria() catalog.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.criteria
}

func (s *Session) update(fn func(catalog.Criteria) catalog.Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = fn(s.criteria)
}

func (s *Session) ToggleBrand(b domain.Brand) {
	s.update(func(c catalog.Criteria) catalog.Criteria { return c.ToggleBrand(b) })
}

func (s *Session) ToggleCategory(cat domain.Category) {
	s.update(func(c catalog.Criteria) catalog.Criteria { return c.ToggleCategory(cat) })
}

func (s *Session) SetQuery(q string) {
	s.update(func(c catalog.Criteria) catalog.Criteria { return c.WithQuery(q) })
}

func (s *Session) SetMaxPrice(p decimal.Decimal) {
	s.update(func(c catalog.Criteria) catalog.Criteria { return c.WithMaxPrice(p) })
}

func (s *Session) SetSort(k catalog.SortKey) {
	s.update(func(c catalog.Criteria) catalog.Criteria { return c.WithSort(k) })
}

// ResetFilters restores the criteria the session started with. The cart is untouched.
func (s *Session) ResetFilters() {
	s.update(func(catalog.Criteria) catalog.Criteria { return s.defaults })
}

func (s *Session) Visible() []domain.Product {
	return catalog.Visible(s.products, s.Criteria())
}

func (s *Session) Product(id string) (domain.Product, bool) {
	idx := slices.IndexFunc(s.products, func(p domain.Product) bool {
		return p.ID == id
	})
	if idx < 0 {
		return domain.Product{}, false
	}
	return s.products[idx], true
}

func (s *Session) Cart() *cart.Store {
	return s.cart
}

// Checkout hands the cart to the checkout gateway. Only what was submitted
// leaves the cart, and only when the gateway accepts the request.
func (s *Session) Checkout(ctx context.Context) (domain.CheckoutRequest, error) {
	pending, err := s.cart.PrepareCheckout()
	if err != nil {
		return domain.CheckoutRequest{}, fmt.Errorf("cart.PrepareCheckout: %w", err)
	}
	req := pending.Request

	if err := s.gateway.Submit(ctx, req); err != nil {
		s.logger.Warn("checkout failed", zap.Stringer("request_id", req.ID), zap.Error(err))
		return domain.CheckoutRequest{}, fmt.Errorf("gateway.Submit: %w", err)
	}

	s.cart.Settle(pending)
	s.logger.Info("checkout submitted", zap.Stringer("request_id", req.ID), zap.Int("lines", len(req.Items)))

	return req, nil
}
