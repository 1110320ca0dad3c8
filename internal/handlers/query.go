package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/filter"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/paging"
	"TOURBOOK_WEB/internal/sorting"
)

// applyQuery updates a board from the request's query string. Only keys that
// are present change the criteria; a criteria change returns to page 1
// unless a page is given too.
func applyQuery[T any, C comparable](b *dashboard.Board[T, C], r *http.Request, parse func(url.Values, C) C) {
	q := r.URL.Query()
	if next := parse(q, b.Criteria()); next != b.Criteria() {
		b.SetCriteria(next)
	}
	if q.Has("page") {
		b.SetPage(paging.ParsePage(r))
	}
}

func text(q url.Values, key string, cur string) string {
	if !q.Has(key) {
		return cur
	}
	return strings.TrimSpace(q.Get(key))
}

func statusFilter(s string) models.BookingStatus {
	if st, ok := models.ParseBookingStatus(s); ok {
		return st
	}
	return filter.All
}

func categoryFilter(s string) models.Category {
	if c, ok := models.ParseCategory(s); ok {
		return c
	}
	return filter.All
}

func roleFilter(s string) models.Role {
	if r, ok := models.ParseRole(s); ok {
		return r
	}
	return filter.All
}

// bookingQuery parses search, status, date and type. The type filter is
// relative to the signed-in user.
func bookingQuery(userID string) func(url.Values, filter.BookingCriteria) filter.BookingCriteria {
	return func(q url.Values, c filter.BookingCriteria) filter.BookingCriteria {
		c.Search = text(q, "search", c.Search)
		if q.Has("status") {
			c.Status = statusFilter(q.Get("status"))
		}
		if q.Has("date") {
			c.Date = filter.ParseDateBucket(q.Get("date"))
		}
		if q.Has("type") {
			c.Type = filter.ParseBookingType(q.Get("type"))
		}
		c.RefID = userID
		return c
	}
}

// listingQuery parses search, category, active and sort.
func listingQuery(q url.Values, c dashboard.ListingQuery) dashboard.ListingQuery {
	c.Search = text(q, "search", c.Search)
	if q.Has("category") {
		c.Category = categoryFilter(q.Get("category"))
	}
	if q.Has("active") {
		c.Active = filter.ParseActiveState(q.Get("active"))
	}
	if q.Has("sort") {
		c.Sort = sorting.ParseOrder(q.Get("sort"), sorting.Newest)
	}
	return c
}

// userQuery parses search, role and active.
func userQuery(q url.Values, c filter.UserCriteria) filter.UserCriteria {
	c.Search = text(q, "search", c.Search)
	if q.Has("role") {
		c.Role = roleFilter(q.Get("role"))
	}
	if q.Has("active") {
		c.Active = filter.ParseActiveState(q.Get("active"))
	}
	return c
}

// wishlistQuery parses search, category and sort.
func wishlistQuery(q url.Values, c dashboard.WishlistQuery) dashboard.WishlistQuery {
	c.Search = text(q, "search", c.Search)
	if q.Has("category") {
		c.Category = categoryFilter(q.Get("category"))
	}
	if q.Has("sort") {
		c.Sort = sorting.ParseOrder(q.Get("sort"), sorting.Recent)
	}
	return c
}
