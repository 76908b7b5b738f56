package menu

import "kazhicho/internal/domain"

type MenuItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Available   bool   `json:"available"`
	ImageURL    string `json:"image_url"`
}

type AddItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Available   bool   `json:"available"`
	ImageURL    string `json:"image_url"`
}

type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

type UpdatePriceRequest struct {
	PriceCents int64 `json:"price_cents"`
}

func itemToDTO(item domain.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		Available:   item.Available,
		ImageURL:    item.ImageURL,
	}
}
