package dashboard

import (
	"context"

	"TOURBOOK_WEB/internal/models"
)

// API is the subset of the marketplace client the dashboards call.
// *apiclient.Client satisfies it.
type API interface {
	AllBookings(ctx context.Context) ([]models.Booking, error)
	GuideBookings(ctx context.Context) ([]models.Booking, error)
	MyBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error
	CancelBooking(ctx context.Context, id string) error

	AllListings(ctx context.Context) ([]models.Listing, error)
	MyListings(ctx context.Context) ([]models.Listing, error)
	ToggleListingActive(ctx context.Context, id string) error
	DeleteListing(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]models.User, error)
	ToggleUserActive(ctx context.Context, id string) error
	ChangeUserRole(ctx context.Context, id string, role models.Role) error
	DeleteUser(ctx context.Context, id string) error

	Wishlist(ctx context.Context) ([]models.WishlistItem, error)
	AddToWishlist(ctx context.Context, listingID string) (models.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, listingID string) error
}
