package models

import "strings"

// BookingStatus is the booking lifecycle state. Transitions are enforced by
// the API; values are exchanged in upper case.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusRejected  BookingStatus = "REJECTED"
)

// Valid reports whether s is a known status.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// ParseBookingStatus normalizes user input ("confirmed") to a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	st := BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}

// Review is the minimal review shape embedded in bookings.
type Review struct {
	ID      string `json:"_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// Booking is a tourist's reservation against a listing.
type Booking struct {
	ID         string        `json:"_id"`
	Listing    ListingRef    `json:"listing"`
	User       UserRef       `json:"user"`
	Date       Date          `json:"date"`
	GroupSize  int           `json:"groupSize"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	HasReview  bool          `json:"hasReview"`
	Review     ReviewRef     `json:"review"`
	CreatedAt  Date          `json:"createdAt"`
	UpdatedAt  Date          `json:"updatedAt"`
}

// ListingTitle returns the embedded listing's title, or "".
func (b Booking) ListingTitle() string {
	if l, ok := b.Listing.Resolve(); ok {
		return l.Title
	}
	return ""
}

// ListingCity returns the embedded listing's city, or "".
func (b Booking) ListingCity() string {
	if l, ok := b.Listing.Resolve(); ok {
		return l.City
	}
	return ""
}

// GuideID returns the id of the guide owning the booked listing, or "".
func (b Booking) GuideID() string {
	if l, ok := b.Listing.Resolve(); ok {
		return l.Guide.ID
	}
	return ""
}

// Reviewed reports whether a completed booking has been reviewed. The flag and
// the embedded reference are treated as redundant signals.
func (b Booking) Reviewed() bool {
	if b.Status != StatusCompleted {
		return false
	}
	return b.HasReview || !b.Review.IsZero()
}

// WishlistItem is a listing saved by a tourist.
type WishlistItem struct {
	ID        string     `json:"_id"`
	User      UserRef    `json:"user"`
	Listing   ListingRef `json:"listing"`
	AddedAt   Date       `json:"addedAt"`
	CreatedAt Date       `json:"createdAt"`
}

// Added returns when the item was saved, falling back to its creation time.
func (w WishlistItem) Added() Date {
	if !w.AddedAt.IsZero() {
		return w.AddedAt
	}
	return w.CreatedAt
}

// ListingID returns the referenced listing id.
func (w WishlistItem) ListingID() string {
	if w.Listing.ID != "" {
		return w.Listing.ID
	}
	if l, ok := w.Listing.Resolve(); ok {
		return l.ID
	}
	return ""
}
