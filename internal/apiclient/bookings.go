package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"TOURBOOK_WEB/internal/models"
)

// BookingRequest is the payload for a new booking.
type BookingRequest struct {
	ListingID string `json:"listingId"`
	Date      string `json:"date"`
	GroupSize int    `json:"groupSize"`
}

// CreateBooking books a tour for the signed-in tourist.
func (c *Client) CreateBooking(ctx context.Context, in BookingRequest) (models.Booking, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/bookings",
		endpoint: "bookings.create",
		body:     in,
		fallback: "Failed to create booking",
	})
	if err != nil {
		return models.Booking{}, err
	}
	return decodeOne[models.Booking](c, "bookings.create", data), nil
}

// AllBookings fetches every booking. Admin only.
func (c *Client) AllBookings(ctx context.Context) ([]models.Booking, error) {
	return c.listBookings(ctx, "/bookings/admin/all", "bookings.admin")
}

// GuideBookings fetches bookings against the signed-in guide's listings.
func (c *Client) GuideBookings(ctx context.Context) ([]models.Booking, error) {
	return c.listBookings(ctx, "/bookings/guide", "bookings.guide")
}

// MyBookings fetches the signed-in tourist's trips.
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	return c.listBookings(ctx, "/bookings/my-bookings", "bookings.mine")
}

func (c *Client) listBookings(ctx context.Context, path, endpoint string) ([]models.Booking, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     path,
		endpoint: endpoint,
		fallback: "Failed to fetch bookings",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Booking](c, endpoint, data), nil
}

// UpdateBookingStatus moves a booking to status. The API enforces the
// allowed transitions.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	_, err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/bookings/" + url.PathEscape(id) + "/status",
		endpoint: "bookings.status",
		body:     map[string]models.BookingStatus{"status": status},
		fallback: "Failed to update booking status",
	})
	return err
}

// CancelBooking cancels one of the signed-in tourist's bookings.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	_, err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/bookings/" + url.PathEscape(id) + "/cancel",
		endpoint: "bookings.cancel",
		fallback: "Failed to cancel booking",
	})
	return err
}
