package dashboard

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/models"
)

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type MockAPI struct {
	mock.Mock
}

func list[T any](args mock.Arguments) ([]T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockAPI) AllBookings(ctx context.Context) ([]models.Booking, error) {
	return list[models.Booking](m.Called(ctx))
}

func (m *MockAPI) GuideBookings(ctx context.Context) ([]models.Booking, error) {
	return list[models.Booking](m.Called(ctx))
}

func (m *MockAPI) MyBookings(ctx context.Context) ([]models.Booking, error) {
	return list[models.Booking](m.Called(ctx))
}

func (m *MockAPI) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockAPI) CancelBooking(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) AllListings(ctx context.Context) ([]models.Listing, error) {
	return list[models.Listing](m.Called(ctx))
}

func (m *MockAPI) MyListings(ctx context.Context) ([]models.Listing, error) {
	return list[models.Listing](m.Called(ctx))
}

func (m *MockAPI) ToggleListingActive(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) DeleteListing(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](m.Called(ctx))
}

func (m *MockAPI) ToggleUserActive(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) ChangeUserRole(ctx context.Context, id string, role models.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockAPI) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	return list[models.WishlistItem](m.Called(ctx))
}

func (m *MockAPI) AddToWishlist(ctx context.Context, listingID string) (models.WishlistItem, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).(models.WishlistItem), args.Error(1)
}

func (m *MockAPI) RemoveFromWishlist(ctx context.Context, listingID string) error {
	return m.Called(ctx, listingID).Error(0)
}

type recorder struct {
	kinds    []Kind
	messages []string
}

func (r *recorder) Notify(kind Kind, _ string, message string) {
	r.kinds = append(r.kinds, kind)
	r.messages = append(r.messages, message)
}

func testDeps(api API, n Notifier) Deps {
	return Deps{
		API:      api,
		Notifier: n,
		Logger:   zap.NewNop(),
		PageSize: 10,
		Clock:    func() time.Time { return testNow },
	}
}

func booking(id string, status models.BookingStatus, date time.Time) models.Booking {
	return models.Booking{
		ID:         id,
		Listing:    models.Resolved("l-"+id, models.Listing{ID: "l-" + id, Title: "Tour " + id, City: "Lisbon"}),
		User:       models.Unresolved[models.User]("u1"),
		Date:       models.NewDate(date),
		GroupSize:  2,
		TotalPrice: 100,
		Status:     status,
	}
}
