package order

import (
	"fmt"
	"sync"

	"kazhicho/internal/domain"
	apperrors "kazhicho/internal/errors"

	"go.uber.org/zap"
)

// Feed is the ordered collection of placed orders, newest first. It is fed
// from two sides: local checkout and the external push channel, which may
// interleave, so every mutation happens under the lock.
type Feed struct {
	mu     sync.Mutex
	orders []domain.Order
	index  map[int64]int
	logger *zap.Logger
}

func NewFeed(logger *zap.Logger) *Feed {
	return &Feed{
		index:  make(map[int64]int),
		logger: logger,
	}
}

// Record prepends a locally placed order.
func (f *Feed) Record(o domain.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prepend(o)
}

// ApplyExternal prepends an order delivered by the push channel. An order
// whose id is already in the feed is dropped and the existing record kept.
func (f *Feed) ApplyExternal(o domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.index[o.ID]; ok {
		return apperrors.NewDuplicateOrderError(fmt.Sprintf("order %d already in feed", o.ID), o.ID)
	}
	f.prepend(o)
	return nil
}

// ApplyStatus reflects a lifecycle transition computed by the external order
// system. Unknown orders and invalid transitions leave the feed untouched.
func (f *Feed) ApplyStatus(orderID int64, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	i, ok := f.index[orderID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("order %d not in feed", orderID))
	}

	from := f.orders[i].Status
	if !domain.ValidStatusTransition(from, status) {
		f.logger.Warn("ignoring invalid order status transition",
			zap.Int64("orderId", orderID),
			zap.String("from", from),
			zap.String("to", status),
		)
		return apperrors.NewValidationError(fmt.Sprintf("cannot move order %d from %s to %s", orderID, from, status))
	}

	f.orders[i].Status = status
	return nil
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

// Snapshot returns a copy of the feed, newest first.
func (f *Feed) Snapshot() []domain.Order {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Order, len(f.orders))
	copy(out, f.orders)
	return out
}

func (f *Feed) prepend(o domain.Order) {
	f.orders = append([]domain.Order{o}, f.orders...)
	f.index = make(map[int64]int, len(f.orders))
	for i, existing := range f.orders {
		f.index[existing.ID] = i
	}
}
