// Package sorting provides the stable orderings used by list views. Every
// function sorts a copy and leaves equal keys in their input order.
package sorting

import (
	"cmp"
	"slices"
	"strings"

	"TOURBOOK_WEB/internal/models"
)

// Order names a listing or wishlist ordering.
type Order string

const (
	Newest    Order = "newest"
	Recent    Order = "recent"
	PriceLow  Order = "price-low"
	PriceHigh Order = "price-high"
	Duration  Order = "duration"
	TitleAsc  Order = "title-asc"
	TitleDesc Order = "title-desc"
)

// ParseOrder maps a query value to an Order, falling back to def.
func ParseOrder(s string, def Order) Order {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case Newest, Recent, PriceLow, PriceHigh, Duration, TitleAsc, TitleDesc:
		return o
	}
	return def
}

// Stable returns a sorted copy of items.
func Stable[T any](items []T, compare func(a, b T) int) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, compare)
	return out
}

func titleKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// BookingsByDate orders bookings by tour date, earliest first.
func BookingsByDate(items []models.Booking) []models.Booking {
	return Stable(items, func(a, b models.Booking) int {
		return a.Date.Compare(b.Date.Time)
	})
}

// BookingsByCreated orders bookings by creation time, newest first.
func BookingsByCreated(items []models.Booking) []models.Booking {
	return Stable(items, func(a, b models.Booking) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
}

// UsersByName orders users alphabetically by name.
func UsersByName(items []models.User) []models.User {
	return Stable(items, func(a, b models.User) int {
		return cmp.Compare(titleKey(a.Name), titleKey(b.Name))
	})
}

func compareListings(o Order) func(a, b models.Listing) int {
	switch o {
	case PriceLow:
		return func(a, b models.Listing) int { return cmp.Compare(a.Fee, b.Fee) }
	case PriceHigh:
		return func(a, b models.Listing) int { return cmp.Compare(b.Fee, a.Fee) }
	case Duration:
		return func(a, b models.Listing) int { return cmp.Compare(b.Duration, a.Duration) }
	case TitleAsc:
		return func(a, b models.Listing) int { return cmp.Compare(titleKey(a.Title), titleKey(b.Title)) }
	case TitleDesc:
		return func(a, b models.Listing) int { return cmp.Compare(titleKey(b.Title), titleKey(a.Title)) }
	case Newest, Recent:
		return func(a, b models.Listing) int { return b.CreatedAt.Compare(a.CreatedAt.Time) }
	}
	return nil
}

// Listings orders listings by o. An unknown order returns a copy unchanged.
func Listings(items []models.Listing, o Order) []models.Listing {
	c := compareListings(o)
	if c == nil {
		return Stable(items, func(models.Listing, models.Listing) int { return 0 })
	}
	return Stable(items, c)
}

// Wishlist orders saved items by o. Recent sorts by the time the item was
// added, newest first; the other orders compare the embedded listing.
func Wishlist(items []models.WishlistItem, o Order) []models.WishlistItem {
	if o == Recent || o == Newest {
		return Stable(items, func(a, b models.WishlistItem) int {
			return b.Added().Compare(a.Added().Time)
		})
	}
	c := compareListings(o)
	if c == nil {
		return Stable(items, func(models.WishlistItem, models.WishlistItem) int { return 0 })
	}
	return Stable(items, func(a, b models.WishlistItem) int {
		la, _ := a.Listing.Resolve()
		lb, _ := b.Listing.Resolve()
		return c(la, lb)
	})
}
