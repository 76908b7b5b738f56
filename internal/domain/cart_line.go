package domain

// CartLine captures a menu item's display fields and price at the moment it
// was added to the cart. Later menu edits do not reach into open carts.
type CartLine struct {
	ItemID      int64
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
}

func NewCartLine(item MenuItem) CartLine {
	return CartLine{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		ImageURL:    item.ImageURL,
	}
}
