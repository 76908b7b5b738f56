package session

import (
	"context"
	"fmt"
	"sync"

	"kazhicho/internal/cart"
	"kazhicho/internal/domain"
	apperrors "kazhicho/internal/errors"
	"kazhicho/internal/menu"
	"kazhicho/internal/order"
	"kazhicho/internal/push"

	"go.uber.org/zap"
)

// Session is one customer's storefront session. It owns the cart and the
// order feed; the menu catalog is an injected read-only collaborator.
type Session struct {
	id        string
	catalog   *menu.Catalog
	submitter order.Submitter
	broker    *push.Broker
	logger    *zap.Logger

	mu   sync.Mutex
	cart *cart.Cart
	feed *order.Feed
}

func New(id string, catalog *menu.Catalog, submitter order.Submitter, broker *push.Broker, logger *zap.Logger) *Session {
	return &Session{
		id:        id,
		catalog:   catalog,
		submitter: submitter,
		broker:    broker,
		logger:    logger.With(zap.String("sessionId", id)),
		cart:      cart.New(),
		feed:      order.NewFeed(logger),
	}
}

func (s *Session) ID() string {
	return s.id
}

// AddItem appends a snapshot of the menu item to the cart. Unknown and
// unavailable items are rejected without touching the cart.
func (s *Session) AddItem(itemID int64) error {
	item, ok := s.catalog.Find(itemID)
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("menu item %d not found", itemID))
	}
	if !item.Available {
		return apperrors.NewInvalidCartStateError(fmt.Sprintf("menu item %d is not available", itemID))
	}

	s.mu.Lock()
	s.cart.Add(domain.NewCartLine(item))
	s.mu.Unlock()
	return nil
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	s.cart.Clear()
	s.mu.Unlock()
}

func (s *Session) CartLines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Session) CartTotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalCents()
}

func (s *Session) CartLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Len()
}

// Checkout places the cart as an order: submit, record to the feed, then
// clear the cart, in that sequence. A failed submission leaves the cart
// intact so the customer can retry.
func (s *Session) Checkout(ctx context.Context, customerName, customerPhone string) (*domain.Order, error) {
	if err := validateCustomer(customerName, customerPhone); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		return nil, apperrors.NewInvalidCartStateError("cannot checkout an empty cart")
	}

	lines := s.cart.Lines()
	placed, err := s.submitter.Submit(ctx, customerName, customerPhone, lines)
	if err != nil {
		s.logger.Warn("checkout failed, cart preserved", zap.Error(err))
		return nil, err
	}

	s.feed.Record(*placed)
	s.cart.Clear()

	s.logger.Info("checkout complete",
		zap.Int64("orderId", placed.ID),
		zap.Int64("totalCents", placed.TotalCents),
		zap.Int("lineCount", len(placed.Lines)),
	)
	return placed, nil
}

// Orders returns the session's order feed, newest first.
func (s *Session) Orders() []domain.Order {
	return s.feed.Snapshot()
}

// Run drains the push subscription until ctx is cancelled or the broker
// closes. Each event is applied atomically; duplicates and invalid
// transitions are dropped without failing the session.
func (s *Session) Run(ctx context.Context) {
	events, cancel := s.broker.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.apply(ev)
		}
	}
}

func (s *Session) apply(ev push.Event) {
	switch e := ev.(type) {
	case push.OrderEvent:
		if err := s.feed.ApplyExternal(e.Order); err != nil {
			if dup, ok := apperrors.IsDuplicateOrderError(err); ok {
				s.logger.Debug("dropping duplicate external order", zap.Int64("orderId", dup.OrderID))
				return
			}
			s.logger.Warn("failed to apply external order", zap.Error(err))
		}
	case push.StatusEvent:
		if err := s.feed.ApplyStatus(e.OrderID, e.Status); err != nil {
			s.logger.Debug("ignoring status event", zap.Int64("orderId", e.OrderID), zap.String("status", e.Status), zap.Error(err))
		}
	case push.LocationEvent:
		// The shared location feed has its own updater; nothing to do here.
	}
}

func validateCustomer(name, phone string) error {
	var details []apperrors.ValidationDetail
	if name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "customer_name", Message: "customer name is required"})
	}
	if phone == "" {
		details = append(details, apperrors.ValidationDetail{Field: "customer_phone", Message: "customer phone is required"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
