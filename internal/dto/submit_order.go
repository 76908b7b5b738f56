package dto

import (
	"time"

	"kazhicho/internal/domain"
)

// SubmitOrderRequest is the wire contract for the external order service and
// for the session checkout endpoint.
type SubmitOrderRequest struct {
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	Items         []OrderLineDTO `json:"items"`
	TotalCents    int64          `json:"total"`
}

type OrderLineDTO struct {
	ItemID      int64  `json:"item_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	ImageURL    string `json:"image_url,omitempty"`
}

type OrderDTO struct {
	ID            int64          `json:"id"`
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	Items         []OrderLineDTO `json:"items"`
	TotalCents    int64          `json:"total"`
	Status        string         `json:"status"`
	PlacedAt      time.Time      `json:"placed_at"`
}

func NewSubmitOrderRequest(customerName, customerPhone string, lines []domain.CartLine) SubmitOrderRequest {
	return SubmitOrderRequest{
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Items:         LinesToDTO(lines),
		TotalCents:    domain.LinesTotalCents(lines),
	}
}

func LinesToDTO(lines []domain.CartLine) []OrderLineDTO {
	items := make([]OrderLineDTO, len(lines))
	for i, l := range lines {
		items[i] = OrderLineDTO{
			ItemID:      l.ItemID,
			Name:        l.Name,
			Description: l.Description,
			PriceCents:  l.PriceCents,
			ImageURL:    l.ImageURL,
		}
	}
	return items
}

func LinesFromDTO(items []OrderLineDTO) []domain.CartLine {
	lines := make([]domain.CartLine, len(items))
	for i, it := range items {
		lines[i] = domain.CartLine{
			ItemID:      it.ItemID,
			Name:        it.Name,
			Description: it.Description,
			PriceCents:  it.PriceCents,
			ImageURL:    it.ImageURL,
		}
	}
	return lines
}

func OrderToDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         LinesToDTO(o.Lines),
		TotalCents:    o.TotalCents,
		Status:        o.Status,
		PlacedAt:      o.PlacedAt,
	}
}

func OrderFromDTO(d OrderDTO) domain.Order {
	return domain.Order{
		ID:            d.ID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Lines:         LinesFromDTO(d.Items),
		TotalCents:    d.TotalCents,
		Status:        d.Status,
		PlacedAt:      d.PlacedAt,
	}
}
