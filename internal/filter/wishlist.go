package filter

import "TOURBOOK_WEB/internal/models"

// WishlistCriteria filters a tourist's saved listings.
type WishlistCriteria struct {
	Search   string          `json:"search"`
	Category models.Category `json:"category"`
}

// Match reports whether w satisfies every active predicate in c. Items whose
// listing is only known by id never match a search or category filter.
func (c WishlistCriteria) Match(w models.WishlistItem) bool {
	l, _ := w.Listing.Resolve()
	if !MatchesText(c.Search, l.Title, l.City, models.GuideName(l.Guide)) {
		return false
	}
	if !Equals(c.Category, l.Category) {
		return false
	}
	return true
}

// Wishlist returns the wishlist items matching c.
func Wishlist(items []models.WishlistItem, c WishlistCriteria) []models.WishlistItem {
	return Apply(items, c.Match)
}
