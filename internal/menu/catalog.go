package menu

import (
	"context"
	"fmt"
	"sync"

	"kazhicho/internal/domain"
	apperrors "kazhicho/internal/errors"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item domain.MenuItem) (int64, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
	UpdatePrice(ctx context.Context, id int64, priceCents int64) error
}

// Catalog is the read-mostly menu source consumed by the ordering flow. It
// serves from an in-memory snapshot; admin edits go through the repository
// and the snapshot is refreshed afterwards. Without a repository (demo mode)
// the seeded snapshot itself is authoritative.
type Catalog struct {
	repo   Repository
	logger *zap.Logger

	mu     sync.RWMutex
	items  []domain.MenuItem
	byID   map[int64]domain.MenuItem
	nextID int64
}

func NewCatalog(repo Repository, logger *zap.Logger) *Catalog {
	return &Catalog{
		repo:   repo,
		logger: logger,
		byID:   make(map[int64]domain.MenuItem),
	}
}

// SeedCatalog builds a repository-less catalog from a fixed item list.
func SeedCatalog(items []domain.MenuItem, logger *zap.Logger) *Catalog {
	c := NewCatalog(nil, logger)
	c.swap(items)
	return c
}

// Refresh reloads the snapshot from the repository.
func (c *Catalog) Refresh(ctx context.Context) error {
	if c.repo == nil {
		return nil
	}

	items, err := c.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("refreshing menu catalog: %w", err)
	}

	c.swap(items)
	c.logger.Debug("menu catalog refreshed", zap.Int("itemCount", len(items)))
	return nil
}

// Items returns the current snapshot, hidden items included; callers that
// present a storefront filter on Available themselves.
func (c *Catalog) Items() []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Find(id int64) (domain.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.byID[id]
	return item, ok
}

// AddItem creates a new menu item through the admin channel.
func (c *Catalog) AddItem(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	if err := validateItem(item); err != nil {
		return domain.MenuItem{}, err
	}

	if c.repo == nil {
		c.mu.Lock()
		c.nextID++
		item.ID = c.nextID
		c.items = append(c.items, item)
		c.byID[item.ID] = item
		c.mu.Unlock()
		return item, nil
	}

	id, err := c.repo.Insert(ctx, item)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("inserting menu item: %w", err)
	}
	item.ID = id

	if err := c.Refresh(ctx); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

// SetAvailability toggles whether an item may be offered to carts.
func (c *Catalog) SetAvailability(ctx context.Context, id int64, available bool) error {
	if c.repo == nil {
		return c.mutate(id, func(item *domain.MenuItem) { item.Available = available })
	}

	if err := c.repo.SetAvailability(ctx, id, available); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// UpdatePrice changes an item's price. Open carts are unaffected; lines
// capture price by value at add time.
func (c *Catalog) UpdatePrice(ctx context.Context, id int64, priceCents int64) error {
	if priceCents < 0 {
		return apperrors.NewValidationError("price must be non-negative",
			apperrors.ValidationDetail{Field: "price_cents", Message: "price must be non-negative"})
	}

	if c.repo == nil {
		return c.mutate(id, func(item *domain.MenuItem) { item.PriceCents = priceCents })
	}

	if err := c.repo.UpdatePrice(ctx, id, priceCents); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

func (c *Catalog) mutate(id int64, fn func(*domain.MenuItem)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			fn(&c.items[i])
			c.byID[id] = c.items[i]
			return nil
		}
	}
	return apperrors.NewNotFoundError(fmt.Sprintf("menu item %d not found", id))
}

func (c *Catalog) swap(items []domain.MenuItem) {
	byID := make(map[int64]domain.MenuItem, len(items))
	var maxID int64
	for _, item := range items {
		byID[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	c.mu.Lock()
	c.items = items
	c.byID = byID
	c.nextID = maxID
	c.mu.Unlock()
}

func validateItem(item domain.MenuItem) error {
	var details []apperrors.ValidationDetail
	if item.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if item.PriceCents < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "price_cents", Message: "price must be non-negative"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
