package filter

import (
	"strings"
	"time"

	"TOURBOOK_WEB/internal/models"
)

// BookingType narrows bookings by which side of the booking RefID is on.
type BookingType string

const (
	TypeAll       BookingType = "all"
	TypeAsTourist BookingType = "asTourist"
	TypeAsGuide   BookingType = "asGuide"
)

// ParseBookingType maps a query value to a BookingType. Unknown values mean TypeAll.
func ParseBookingType(s string) BookingType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astourist", "tourist":
		return TypeAsTourist
	case "asguide", "guide":
		return TypeAsGuide
	}
	return TypeAll
}

// BookingCriteria filters booking lists (admin bookings, guide requests,
// guide upcoming, tourist trips).
type BookingCriteria struct {
	Search string               `json:"search"`
	Status models.BookingStatus `json:"status"`
	Date   DateBucket           `json:"date"`
	Type   BookingType          `json:"type"`
	RefID  string               `json:"refId,omitempty"`
}

// Match reports whether b satisfies every active predicate in c.
func (c BookingCriteria) Match(b models.Booking, now time.Time) bool {
	if !MatchesText(c.Search, b.ListingTitle(), b.ListingCity()) {
		return false
	}
	if !Equals(c.Status, b.Status) {
		return false
	}
	if !InBucket(b.Date.Time, c.Date, now) {
		return false
	}
	return c.matchType(b)
}

func (c BookingCriteria) matchType(b models.Booking) bool {
	if c.RefID == "" {
		return true
	}
	switch c.Type {
	case TypeAsTourist:
		return b.User.ID == c.RefID
	case TypeAsGuide:
		return b.GuideID() == c.RefID
	}
	return true
}

// Bookings returns the bookings matching c.
func Bookings(items []models.Booking, c BookingCriteria, now time.Time) []models.Booking {
	return Apply(items, func(b models.Booking) bool { return c.Match(b, now) })
}
