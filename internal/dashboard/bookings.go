package dashboard

import (
	"context"
	"time"

	"TOURBOOK_WEB/internal/filter"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/sorting"
	"TOURBOOK_WEB/internal/stats"
)

// Board names.
const (
	BoardAdminBookings   = "admin-bookings"
	BoardAdminUsers      = "admin-users"
	BoardAdminListings   = "admin-listings"
	BoardGuideListings   = "guide-listings"
	BoardGuideRequests   = "guide-requests"
	BoardGuideUpcoming   = "guide-upcoming"
	BoardTouristTrips    = "tourist-trips"
	BoardTouristWishlist = "tourist-wishlist"
)

// BookingBoard is a board over bookings.
type BookingBoard = Board[models.Booking, filter.BookingCriteria]

// BookingView is one rendered page of a booking board.
type BookingView = View[models.Booking, filter.BookingCriteria]

func defaultBookingCriteria() filter.BookingCriteria {
	return filter.BookingCriteria{Status: filter.All, Date: filter.DateAll, Type: filter.TypeAll}
}

// AdminBookings lists every booking on the platform, newest first.
type AdminBookings struct {
	*BookingBoard
	api API
}

func newAdminBookings(deps Deps) *AdminBookings {
	d := &AdminBookings{api: deps.API}
	d.BookingBoard = newBoard(BoardAdminBookings, deps, defaultBookingCriteria(),
		deps.API.AllBookings, bookingID,
		func(items []models.Booking, c filter.BookingCriteria, now time.Time) []models.Booking {
			return sorting.BookingsByCreated(filter.Bookings(items, c, now))
		})
	return d
}

// Stats summarizes the whole collection.
func (d *AdminBookings) Stats() stats.BookingStats {
	return stats.Bookings(d.Items())
}

// UpdateStatus moves a booking to status.
func (d *AdminBookings) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return d.mutate(ctx, mutation[models.Booking]{
		id:        id,
		action:    "status",
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.UpdateBookingStatus(ctx, id, status) },
		patch:     patchStatus(id, status),
		success:   "Booking " + statusVerb(status),
	})
}

// GuideRequests lists pending requests against the guide's listings,
// soonest first. Approved or rejected requests drop out of the view.
type GuideRequests struct {
	*BookingBoard
	api API
}

func newGuideRequests(deps Deps) *GuideRequests {
	d := &GuideRequests{api: deps.API}
	d.BookingBoard = newBoard(BoardGuideRequests, deps, defaultBookingCriteria(),
		deps.API.GuideBookings, bookingID,
		func(items []models.Booking, c filter.BookingCriteria, now time.Time) []models.Booking {
			c.Status = models.StatusPending
			return sorting.BookingsByDate(filter.Bookings(items, c, now))
		})
	return d
}

// Stats summarizes the pending requests.
func (d *GuideRequests) Stats(now time.Time) stats.GuideBookingStats {
	pending := filter.Bookings(d.Items(), filter.BookingCriteria{Status: models.StatusPending}, now)
	return stats.GuideBookings(pending, now)
}

// Approve confirms a pending request.
func (d *GuideRequests) Approve(ctx context.Context, id string) error {
	return d.setStatus(ctx, id, "approve", models.StatusConfirmed)
}

// Reject declines a pending request.
func (d *GuideRequests) Reject(ctx context.Context, id string) error {
	return d.setStatus(ctx, id, "reject", models.StatusRejected)
}

func (d *GuideRequests) setStatus(ctx context.Context, id, action string, status models.BookingStatus) error {
	return d.mutate(ctx, mutation[models.Booking]{
		id:        id,
		action:    action,
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.UpdateBookingStatus(ctx, id, status) },
		patch:     patchStatus(id, status),
		success:   "Booking " + statusVerb(status),
	})
}

// GuideUpcoming lists confirmed bookings from now on, soonest first.
type GuideUpcoming struct {
	*BookingBoard
	api API
}

func upcomingConfirmed(items []models.Booking, c filter.BookingCriteria, now time.Time) []models.Booking {
	c.Status = models.StatusConfirmed
	if c.Date == filter.DateAll || c.Date == filter.DatePast {
		c.Date = filter.DateUpcoming
	}
	return filter.Bookings(items, c, now)
}

func newGuideUpcoming(deps Deps) *GuideUpcoming {
	d := &GuideUpcoming{api: deps.API}
	d.BookingBoard = newBoard(BoardGuideUpcoming, deps, defaultBookingCriteria(),
		deps.API.GuideBookings, bookingID,
		func(items []models.Booking, c filter.BookingCriteria, now time.Time) []models.Booking {
			return sorting.BookingsByDate(upcomingConfirmed(items, c, now))
		})
	return d
}

// Stats summarizes upcoming confirmed bookings.
func (d *GuideUpcoming) Stats(now time.Time) stats.GuideBookingStats {
	return stats.GuideBookings(upcomingConfirmed(d.Items(), defaultBookingCriteria(), now), now)
}

// Complete marks a tour as done.
func (d *GuideUpcoming) Complete(ctx context.Context, id string) error {
	return d.setStatus(ctx, id, "complete", models.StatusCompleted)
}

// Cancel calls off a confirmed tour.
func (d *GuideUpcoming) Cancel(ctx context.Context, id string) error {
	return d.setStatus(ctx, id, "cancel", models.StatusCancelled)
}

func (d *GuideUpcoming) setStatus(ctx context.Context, id, action string, status models.BookingStatus) error {
	return d.mutate(ctx, mutation[models.Booking]{
		id:        id,
		action:    action,
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.UpdateBookingStatus(ctx, id, status) },
		patch:     patchStatus(id, status),
		success:   "Booking " + statusVerb(status),
	})
}

// TouristTrips lists the signed-in tourist's bookings by tour date.
type TouristTrips struct {
	*BookingBoard
	api API
}

func newTouristTrips(deps Deps) *TouristTrips {
	d := &TouristTrips{api: deps.API}
	d.BookingBoard = newBoard(BoardTouristTrips, deps, defaultBookingCriteria(),
		deps.API.MyBookings, bookingID,
		func(items []models.Booking, c filter.BookingCriteria, now time.Time) []models.Booking {
			return sorting.BookingsByDate(filter.Bookings(items, c, now))
		})
	return d
}

// Stats summarizes every trip.
func (d *TouristTrips) Stats(now time.Time) stats.TripStats {
	return stats.Trips(d.Items(), now)
}

// Cancel cancels one of the tourist's bookings.
func (d *TouristTrips) Cancel(ctx context.Context, id string) error {
	return d.mutate(ctx, mutation[models.Booking]{
		id:        id,
		action:    "cancel",
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.CancelBooking(ctx, id) },
		patch:     patchStatus(id, models.StatusCancelled),
		success:   "Booking cancelled",
	})
}

func statusVerb(s models.BookingStatus) string {
	switch s {
	case models.StatusConfirmed:
		return "confirmed"
	case models.StatusCompleted:
		return "marked as completed"
	case models.StatusCancelled:
		return "cancelled"
	case models.StatusRejected:
		return "rejected"
	case models.StatusPending:
		return "moved to pending"
	}
	return "updated"
}
