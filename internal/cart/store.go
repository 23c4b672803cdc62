package cart

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/shoestore/internal/domain"
	"go.uber.org/zap"
)

// Store holds the line items of one session's cart.
// Every operation runs under a single mutex, so mutations are serialized.
type Store struct {
	mu       sync.Mutex
	items    []domain.CartItem
	shipping domain.ShippingOption
	logger   *zap.Logger
}

type Option func(*Store) error

func WithShipping(method domain.ShippingMethod) Option {
	return func(s *Store) error {
		option, err := domain.LookupShipping(method)
		if err != nil {
			return err
		}
		s.shipping = option
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			return fmt.Errorf("logger is nil")
		}
		s.logger = logger
		return nil
	}
}

func New(opts ...Option) (*Store, error) {
	ground, err := domain.LookupShipping(domain.ShippingGround)
	if err != nil {
		return nil, fmt.Errorf("domain.LookupShipping: %w", err)
	}

	s := &Store{
		shipping: ground,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("cart option: %w", err)
		}
	}

	return s, nil
}

type AddResult struct {
	Index  int
	Merged bool
	Item   domain.CartItem
}

// AddItem adds one unit of (product, size, color). A line with the same
// identity gets its quantity incremented, otherwise a new line is appended
// with the product's current price and display fields.
func (s *Store) AddItem(p domain.Product, size domain.Size, color domain.Color) (AddResult, error) {
	if size == domain.NoSize || color.IsZero() {
		return AddResult{}, domain.ErrInvalidSelection
	}
	if !p.HasSize(size) {
		return AddResult{}, fmt.Errorf("%w: size[%d] is not offered for product[%s]", domain.ErrInvalidSelection, size, p.ID)
	}
	offered, ok := p.Color(color.Code)
	if !ok {
		return AddResult{}, fmt.Errorf("%w: color[%s] is not offered for product[%s]", domain.ErrInvalidSelection, color.Code, p.ID)
	}

	if p.Price.Currency != domain.DefaultCurrency {
		return AddResult{}, fmt.Errorf("product[%s]: currency[%s] is not supported", p.ID, p.Price.Currency)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey{ProductID: p.ID, Size: size, ColorCode: offered.Code}

	if idx := s.indexOf(key); idx >= 0 {
		s.items[idx].Quantity++

		s.logger.Debug("cart item merged",
			zap.String("product_id", p.ID),
			zap.Int("size", int(size)),
			zap.String("color", offered.Code),
			zap.Int("quantity", s.items[idx].Quantity))

		return AddResult{Index: idx, Merged: true, Item: s.items[idx]}, nil
	}

	item := domain.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Image:     p.FirstImage(),
		Size:      size,
		Color:     offered,
		UnitPrice: p.Price,
		Quantity:  1,
	}
	s.items = append(s.items, item)

	s.logger.Debug("cart item added",
		zap.String("product_id", p.ID),
		zap.Int("size", int(size)),
		zap.String("color", offered.Code),
		zap.Stringer("unit_price", p.Price))

	return AddResult{Index: len(s.items) - 1, Item: item}, nil
}

// UpdateQuantity adds delta to the quantity of the item at index.
// An item whose quantity drops to zero or below is removed.
func (s *Store) UpdateQuantity(index, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return err
	}

	quantity := s.items[index].Quantity + delta
	if quantity <= 0 {
		removed := s.items[index]
		s.items = slices.Delete(s.items, index, index+1)

		s.logger.Debug("cart item removed by quantity",
			zap.String("product_id", removed.ProductID),
			zap.Int("delta", delta))
		return nil
	}

	s.items[index].Quantity = quantity
	return nil
}

func (s *Store) RemoveItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return err
	}

	removed := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)

	s.logger.Debug("cart item removed", zap.String("product_id", removed.ProductID))
	return nil
}

func (s *Store) SetShippingMethod(method domain.ShippingMethod) error {
	option, err := domain.LookupShipping(method)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.shipping = option
	return nil
}

func (s *Store) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return newView(slices.Clone(s.items), s.shipping)
}

// Pending is a checkout handed to the gateway but not yet settled.
type Pending struct {
	Request domain.CheckoutRequest

	lines []domain.CartItem
}

// PrepareCheckout builds the handoff payload for the current cart contents.
// The cart is left as is until Settle.
func (s *Store) PrepareCheckout() (Pending, error) {
	view := s.Snapshot()
	if len(view.Items) == 0 {
		return Pending{}, domain.ErrEmptyCart
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return Pending{}, fmt.Errorf("uuid.NewRandom: %w", err)
	}

	req := domain.CheckoutRequest{
		ID:       id,
		Currency: view.Subtotal.Currency.String(),
		Items:    make([]domain.CheckoutItem, 0, len(view.Items)),
		Shipping: domain.CheckoutShipping{
			Method: view.Shipping.Method,
			Cost:   view.ShippingCost.Amount,
		},
	}

	for _, item := range view.Items {
		req.Items = append(req.Items, domain.CheckoutItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.UnitPrice.Amount,
			Quantity:  item.Quantity,
		})
	}

	return Pending{Request: req, lines: view.Items}, nil
}

// Settle takes the submitted quantities out of the cart. Lines added or
// increased after PrepareCheckout keep the difference.
func (s *Store) Settle(p Pending) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range p.lines {
		idx := s.indexOf(line.Key())
		if idx < 0 {
			continue
		}

		s.items[idx].Quantity -= line.Quantity
		if s.items[idx].Quantity <= 0 {
			s.items = slices.Delete(s.items, idx, idx+1)
		}
	}

	s.logger.Debug("checkout settled",
		zap.Stringer("request_id", p.Request.ID),
		zap.Int("remaining_lines", len(s.items)))
}

func (s *Store) indexOf(key domain.LineKey) int {
	return slices.IndexFunc(s.items, func(item domain.CartItem) bool {
		return item.Key() == key
	})
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: index[%d], cart has %d items", domain.ErrItemNotFound, index, len(s.items))
	}
	return nil
}
