package menu

import (
	"context"
	"database/sql"

	"kazhicho/internal/menu/repository"

	"go.uber.org/zap"
)

// NewModule builds the menu catalog and its controller. With a database the
// catalog is backed by the MenuItems table; without one it is seeded with
// the demo menu.
func NewModule(ctx context.Context, db *sql.DB, logger *zap.Logger) (*Catalog, *Controller, error) {
	var catalog *Catalog
	if db != nil {
		catalog = NewCatalog(repository.NewMySQLMenuRepository(db), logger)
		if err := catalog.Refresh(ctx); err != nil {
			return nil, nil, err
		}
	} else {
		catalog = SeedCatalog(SampleMenu(), logger)
	}

	return catalog, NewController(catalog, logger), nil
}
