package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/apiclient"
	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/utils"
)

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

// MockAPI stands in for the marketplace client across every handler.
type MockAPI struct {
	mock.Mock
}

func list[T any](args mock.Arguments) ([]T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockAPI) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAPI) ListListings(ctx context.Context) ([]models.Listing, error) {
	return list[models.Listing](m.Called(ctx))
}

func (m *MockAPI) GetListing(ctx context.Context, id string) (models.Listing, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Listing), args.Error(1)
}

func (m *MockAPI) CreateBooking(ctx context.Context, in apiclient.BookingRequest) (models.Booking, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Booking), args.Error(1)
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

func newTestRegistry(api dashboard.API) *dashboard.Registry {
	return dashboard.NewRegistry(dashboard.Deps{
		API:      api,
		Logger:   zap.NewNop(),
		PageSize: 10,
		Clock:    testClock,
	}, time.Hour)
}

// asUser injects an authenticated user the way AuthMiddleware does.
func asUser(id string, role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := utils.WithAuthUser(r.Context(), utils.AuthUser{ID: id, Email: id + "@example.com", Role: string(role)})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func routerFor(userID string, role models.Role, mount func(r chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(asUser(userID, role))
	mount(r)
	return r
}

func listing(id string, active bool) models.Listing {
	return models.Listing{
		ID:           id,
		Title:        "Tour " + id,
		Description:  "Walk <script>alert(1)</script>around",
		City:         "Lisbon",
		Category:     models.CategoryFood,
		Fee:          25,
		Duration:     3,
		MaxGroupSize: 4,
		IsActive:     active,
		Guide:        models.Resolved("g1", models.User{ID: "g1", Name: "Ana Guide"}),
		CreatedAt:    models.NewDate(testNow.AddDate(0, 0, -1)),
	}
}

func booking(id string, status models.BookingStatus, date time.Time) models.Booking {
	return models.Booking{
		ID:         id,
		Listing:    models.Resolved("l-"+id, listing("l-"+id, true)),
		User:       models.Unresolved[models.User]("t1"),
		Date:       models.NewDate(date),
		GroupSize:  2,
		TotalPrice: 50,
		Status:     status,
	}
}
