package domain

import "time"

type MenuItem struct {
	ID          int64
	Name        string
	Description string
	PriceCents  int64
	Available   bool
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
