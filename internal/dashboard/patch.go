package dashboard

import (
	"slices"
	"time"

	"TOURBOOK_WEB/internal/models"
)

// Patches never modify the slice they are given; views may still hold it.

func removeByID[T any](idOf func(T) string, id string) func([]T, time.Time) []T {
	return func(items []T, _ time.Time) []T {
		return slices.DeleteFunc(slices.Clone(items), func(it T) bool { return idOf(it) == id })
	}
}

func updateByID[T any](idOf func(T) string, id string, fn func(*T, time.Time)) func([]T, time.Time) []T {
	return func(items []T, now time.Time) []T {
		out := slices.Clone(items)
		for i := range out {
			if idOf(out[i]) == id {
				fn(&out[i], now)
			}
		}
		return out
	}
}

func prepend[T any](item T) func([]T, time.Time) []T {
	return func(items []T, _ time.Time) []T {
		out := make([]T, 0, len(items)+1)
		out = append(out, item)
		return append(out, items...)
	}
}

func bookingID(b models.Booking) string       { return b.ID }
func listingID(l models.Listing) string       { return l.ID }
func userID(u models.User) string             { return u.ID }
func wishlistID(w models.WishlistItem) string { return w.ListingID() }

func patchStatus(id string, status models.BookingStatus) func([]models.Booking, time.Time) []models.Booking {
	return updateByID(bookingID, id, func(b *models.Booking, now time.Time) {
		b.Status = status
		b.UpdatedAt = models.NewDate(now)
	})
}

func patchListingActive(id string) func([]models.Listing, time.Time) []models.Listing {
	return updateByID(listingID, id, func(l *models.Listing, now time.Time) {
		l.IsActive = !l.IsActive
		l.UpdatedAt = models.NewDate(now)
	})
}

func patchUserActive(id string) func([]models.User, time.Time) []models.User {
	return updateByID(userID, id, func(u *models.User, now time.Time) {
		u.IsActive = !u.IsActive
		u.UpdatedAt = models.NewDate(now)
	})
}

func patchUserRole(id string, role models.Role) func([]models.User, time.Time) []models.User {
	return updateByID(userID, id, func(u *models.User, now time.Time) {
		u.Role = role
		u.UpdatedAt = models.NewDate(now)
	})
}
