package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"marketplace/internal/domain"
)

// Service implements domain.CartService.
type Service struct {
	cart     domain.CartStore
	products domain.ProductStore
	log      logrus.FieldLogger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now for new line timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New constructs a cart Service.
func New(cart domain.CartStore, products domain.ProductStore, log logrus.FieldLogger, opts ...Option) *Service {
	s := &Service{cart: cart, products: products, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add puts quantity of a product in the cart, accumulating onto an existing line.
func (s *Service) Add(ctx context.Context, id domain.ProductID, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if _, ok, err := s.products.Product(ctx, id); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err := s.cart.AddItem(ctx, domain.CartItem{ProductID: id, Quantity: quantity, AddedAt: s.now()}); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"product_id": id, "quantity": quantity}).Debug("added to cart")
	return nil
}

// Items returns the cart lines, newest first.
func (s *Service) Items(ctx context.Context) ([]domain.CartItem, error) {
	return s.cart.Items(ctx)
}

// Count returns the number of lines in the cart.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.cart.Count(ctx)
}

// SetQuantity replaces a line's quantity. Zero or less removes the line.
func (s *Service) SetQuantity(ctx context.Context, id domain.ProductID, quantity int) error {
	return s.cart.UpdateQuantity(ctx, id, quantity)
}

// Increment adds one to a line.
func (s *Service) Increment(ctx context.Context, id domain.ProductID) error {
	return s.step(ctx, id, 1)
}

// Decrement takes one from a line, removing it when it reaches zero.
func (s *Service) Decrement(ctx context.Context, id domain.ProductID) error {
	return s.step(ctx, id, -1)
}

func (s *Service) step(ctx context.Context, id domain.ProductID, delta int) error {
	item, ok, err := s.cart.Item(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotInCart
	}
	return s.cart.UpdateQuantity(ctx, id, item.Quantity+delta)
}

// Remove deletes a line.
func (s *Service) Remove(ctx context.Context, id domain.ProductID) error {
	return s.cart.DeleteItem(ctx, id)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	return s.cart.DeleteAll(ctx)
}

// Summary joins the cart with the product cache. Lines whose product is not
// cached are left out of the lines and the totals.
func (s *Service) Summary(ctx context.Context) (domain.CartSummary, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return domain.CartSummary{}, err
	}
	if len(items) == 0 {
		return domain.CartSummary{}, nil
	}
	ids := make([]domain.ProductID, len(items))
	for i, it := range items {
		ids[i] = it.ProductID
	}
	products, err := s.products.ProductsByIDs(ctx, ids)
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("load cart products: %w", err)
	}
	byID := make(map[domain.ProductID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var sum domain.CartSummary
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			s.log.WithField("product_id", it.ProductID).Debug("cart line has no cached product")
			continue
		}
		line := domain.CartLine{Product: p, Item: it}
		sum.Lines = append(sum.Lines, line)
		sum.TotalQuantity += it.Quantity
		sum.TotalPrice += line.Subtotal()
	}
	return sum, nil
}

// Watch sends the current summary and then one after every cart change.
// The channel is closed when ctx is done.
func (s *Service) Watch(ctx context.Context) <-chan domain.CartSummary {
	out := make(chan domain.CartSummary)
	changes := s.cart.Changes(ctx)
	go func() {
		defer close(out)
		for {
			sum, err := s.Summary(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.log.WithError(err).Warn("cart summary failed")
			} else {
				select {
				case out <- sum:
				case <-ctx.Done():
					return
				}
			}
			if _, ok := <-changes; !ok {
				return
			}
		}
	}()
	return out
}

// Compile-time assertion that Service implements domain.CartService.
var _ domain.CartService = (*Service)(nil)
