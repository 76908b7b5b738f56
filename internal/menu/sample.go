package menu

import "kazhicho/internal/domain"

// SampleMenu is the seed menu for the offline/demo deployment, used when no
// catalog database is configured.
func SampleMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, Name: "Masala Dosa", Description: "Crispy dosa with potato masala", PriceCents: 15000, Available: true, ImageURL: "https://images.unsplash.com/photo-1600891964599-f61ba0e24092?auto=format&fit=crop&w=800&q=60"},
		{ID: 2, Name: "Paneer Wrap", Description: "Spicy paneer with fresh veggies", PriceCents: 12000, Available: true, ImageURL: "https://images.unsplash.com/photo-1604908177522-4e0f4a6b7f5a?auto=format&fit=crop&w=800&q=60"},
		{ID: 3, Name: "Chai", Description: "Hot Indian tea", PriceCents: 3000, Available: true, ImageURL: "https://images.unsplash.com/photo-1510696092049-6f2f6f7f3aaf?auto=format&fit=crop&w=800&q=60"},
		{ID: 4, Name: "Samosa", Description: "Crispy potato samosa", PriceCents: 4000, Available: true, ImageURL: "https://images.unsplash.com/photo-1604908177522-4e0f4a6b7f5a?auto=format&fit=crop&w=800&q=60"},
		{ID: 5, Name: "Cold Coffee", Description: "Iced coffee delight", PriceCents: 10000, Available: true, ImageURL: "https://images.unsplash.com/photo-1511920170033-f8396924c348?auto=format&fit=crop&w=800&q=60"},
	}
}
