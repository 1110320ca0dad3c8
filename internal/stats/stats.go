// Package stats computes the summary cards shown above dashboard lists.
package stats

import (
	"strings"
	"time"

	"TOURBOOK_WEB/internal/models"
)

// Average returns total/count, or 0 when count is 0.
func Average(total float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return total / float64(count)
}

// DistinctCities counts the distinct non-empty cities, ignoring case and
// surrounding whitespace.
func DistinctCities(cities []string) int {
	seen := make(map[string]struct{}, len(cities))
	for _, c := range cities {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		seen[c] = struct{}{}
	}
	return len(seen)
}

// CountsTowardSpend reports whether a booking's price is money the tourist
// has committed: confirmed and completed bookings only.
func CountsTowardSpend(s models.BookingStatus) bool {
	return s == models.StatusConfirmed || s == models.StatusCompleted
}

// StatusCounts buckets bookings by status.
type StatusCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Rejected  int `json:"rejected"`
}

func (s *StatusCounts) add(st models.BookingStatus) {
	switch st {
	case models.StatusPending:
		s.Pending++
	case models.StatusConfirmed:
		s.Confirmed++
	case models.StatusCompleted:
		s.Completed++
	case models.StatusCancelled:
		s.Cancelled++
	case models.StatusRejected:
		s.Rejected++
	}
}

// Sum returns the number of bookings in any bucket.
func (s StatusCounts) Sum() int {
	return s.Pending + s.Confirmed + s.Completed + s.Cancelled + s.Rejected
}

// BookingStats backs the admin bookings cards.
type BookingStats struct {
	Total int `json:"total"`
	StatusCounts
	Revenue float64 `json:"revenue"`
}

// Bookings aggregates an admin booking list. Revenue sums confirmed and
// completed bookings.
func Bookings(items []models.Booking) BookingStats {
	s := BookingStats{Total: len(items)}
	for _, b := range items {
		s.add(b.Status)
		if CountsTowardSpend(b.Status) {
			s.Revenue += b.TotalPrice
		}
	}
	return s
}

// TripStats backs the tourist trips cards.
type TripStats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	StatusCounts
	Reviewed   int     `json:"reviewed"`
	TotalSpent float64 `json:"totalSpent"`
}

// Trips aggregates a tourist's bookings. Upcoming counts confirmed trips
// dated now or later.
func Trips(items []models.Booking, now time.Time) TripStats {
	s := TripStats{Total: len(items)}
	for _, b := range items {
		s.add(b.Status)
		if b.Status == models.StatusConfirmed && !b.Date.IsZero() && !b.Date.Before(now) {
			s.Upcoming++
		}
		if b.Reviewed() {
			s.Reviewed++
		}
		if CountsTowardSpend(b.Status) {
			s.TotalSpent += b.TotalPrice
		}
	}
	return s
}

// GuideBookingStats backs the guide request and upcoming-tour cards.
type GuideBookingStats struct {
	Total             int     `json:"total"`
	Guests            int     `json:"guests"`
	PotentialEarnings float64 `json:"potentialEarnings"`
	Today             int     `json:"today"`
}

// GuideBookings aggregates the bookings a guide sees in one list.
func GuideBookings(items []models.Booking, now time.Time) GuideBookingStats {
	s := GuideBookingStats{Total: len(items)}
	y, m, d := now.Date()
	for _, b := range items {
		if b.GroupSize > 0 {
			s.Guests += b.GroupSize
		}
		s.PotentialEarnings += b.TotalPrice
		if !b.Date.IsZero() {
			by, bm, bd := b.Date.In(now.Location()).Date()
			if by == y && bm == m && bd == d {
				s.Today++
			}
		}
	}
	return s
}

// RoleStats backs the admin users cards. Role and active state are counted
// independently.
type RoleStats struct {
	TotalUsers    int `json:"totalUsers"`
	Tourists      int `json:"tourists"`
	Guides        int `json:"guides"`
	Admins        int `json:"admins"`
	ActiveUsers   int `json:"activeUsers"`
	VerifiedUsers int `json:"verifiedUsers"`
}

// Roles aggregates a user list.
func Roles(items []models.User) RoleStats {
	s := RoleStats{TotalUsers: len(items)}
	for _, u := range items {
		switch u.Role {
		case models.RoleTourist:
			s.Tourists++
		case models.RoleGuide:
			s.Guides++
		case models.RoleAdmin:
			s.Admins++
		}
		if u.IsActive {
			s.ActiveUsers++
		}
		if u.IsVerified {
			s.VerifiedUsers++
		}
	}
	return s
}

// ListingStats backs the guide and admin listings cards.
type ListingStats struct {
	Total      int     `json:"total"`
	Active     int     `json:"active"`
	Inactive   int     `json:"inactive"`
	TotalValue float64 `json:"totalValue"`
	AverageFee float64 `json:"averageFee"`
	Cities     int     `json:"cities"`
}

// Listings aggregates a listing list. TotalValue sums every fee regardless of
// active state.
func Listings(items []models.Listing) ListingStats {
	s := ListingStats{Total: len(items)}
	cities := make([]string, 0, len(items))
	for _, l := range items {
		if l.IsActive {
			s.Active++
		} else {
			s.Inactive++
		}
		s.TotalValue += l.Fee
		cities = append(cities, l.City)
	}
	s.AverageFee = Average(s.TotalValue, s.Total)
	s.Cities = DistinctCities(cities)
	return s
}

// WishlistStats backs the wishlist cards.
type WishlistStats struct {
	TotalItems    int     `json:"totalItems"`
	TotalValue    float64 `json:"totalValue"`
	AveragePrice  float64 `json:"averagePrice"`
	SelectedCount int     `json:"selectedCount"`
	SelectedValue float64 `json:"selectedValue"`
	Cities        int     `json:"cities"`
}

// Wishlist aggregates saved items. Totals cover every item; the Selected
// fields cover the items whose listing ids are in selected. Items whose listing is
// only known by id contribute nothing to the money totals.
func Wishlist(items []models.WishlistItem, selected map[string]bool) WishlistStats {
	s := WishlistStats{TotalItems: len(items)}
	cities := make([]string, 0, len(items))
	for _, w := range items {
		l, _ := w.Listing.Resolve()
		s.TotalValue += l.Fee
		cities = append(cities, l.City)
		if selected[w.ListingID()] {
			s.SelectedCount++
			s.SelectedValue += l.Fee
		}
	}
	s.AveragePrice = Average(s.TotalValue, s.TotalItems)
	s.Cities = DistinctCities(cities)
	return s
}
