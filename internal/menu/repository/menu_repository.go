package repository

import (
	"context"
	"database/sql"
	"fmt"

	"kazhicho/internal/domain"
	"kazhicho/internal/errors"
)

type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

func (r *MySQLMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, description, priceCents, available, imageUrl, createdAt, updatedAt
		FROM MenuItems
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.PriceCents,
			&item.Available, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *MySQLMenuRepository) FindByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, priceCents, available, imageUrl, createdAt, updatedAt
		FROM MenuItems
		WHERE id = ?
	`

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.PriceCents,
		&item.Available, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}

func (r *MySQLMenuRepository) Insert(ctx context.Context, item domain.MenuItem) (int64, error) {
	query := `
		INSERT INTO MenuItems (name, description, priceCents, available, imageUrl)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.PriceCents, item.Available, item.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("inserting menu item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted menu item id: %w", err)
	}

	return id, nil
}

func (r *MySQLMenuRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	query := `UPDATE MenuItems SET available = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, available, id)
	if err != nil {
		return fmt.Errorf("updating menu item availability: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}

	return nil
}

func (r *MySQLMenuRepository) UpdatePrice(ctx context.Context, id int64, priceCents int64) error {
	query := `UPDATE MenuItems SET priceCents = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, priceCents, id)
	if err != nil {
		return fmt.Errorf("updating menu item price: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}

	return nil
}
