package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/apiclient"
	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/models"
)

type wishlistPayload struct {
	State string              `json:"state"`
	Items []dto.WishlistEntry `json:"items"`
}

func saved(id, listingID string) models.WishlistItem {
	return models.WishlistItem{
		ID:      id,
		User:    models.Unresolved[models.User]("t1"),
		Listing: models.Resolved(listingID, listing(listingID, true)),
		AddedAt: models.NewDate(testNow.AddDate(0, 0, -2)),
	}
}

func touristRouter(h *DashboardHandler) http.Handler {
	return routerFor("t1", models.RoleTourist, func(r chi.Router) {
		r.Get("/trips", h.TouristTrips)
		r.Post("/trips/{id}/cancel", h.CancelTrip)
		r.Get("/wishlist", h.TouristWishlist)
		r.Post("/wishlist", h.AddToWishlist)
		r.Post("/wishlist/select-all", h.SelectAllWishlist)
		r.Delete("/wishlist/selection", h.ClearWishlistSelection)
		r.Post("/wishlist/remove-selected", h.RemoveSelectedWishlist)
		r.Post("/wishlist/{listingId}/select", h.ToggleWishlistSelection)
		r.Delete("/wishlist/{listingId}", h.RemoveFromWishlist)
	})
}

func selectedIDs(items []dto.WishlistEntry) []string {
	var out []string
	for _, it := range items {
		if it.Selected {
			out = append(out, it.ListingID)
		}
	}
	return out
}

func TestCancelTrip(t *testing.T) {
	api := new(MockAPI)
	api.On("MyBookings", mock.Anything).Return([]models.Booking{
		booking("b1", models.StatusConfirmed, testNow.AddDate(0, 0, 2)),
	}, nil).Once()
	api.On("CancelBooking", mock.Anything, "b1").Return(nil).Once()

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	rr := serve(touristRouter(h), http.MethodPost, "/trips/b1/cancel", "")

	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[bookingsPayload](t, rr.Body.Bytes())
	require.Len(t, got.Items, 1)
	assert.Equal(t, "CANCELLED", got.Items[0].Status)
	api.AssertExpectations(t)
}

func TestWishlistSelection(t *testing.T) {
	api := new(MockAPI)
	api.On("Wishlist", mock.Anything).Return([]models.WishlistItem{
		saved("w1", "l1"), saved("w2", "l2"), saved("w3", "l3"),
	}, nil).Once()

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	router := touristRouter(h)

	rr := serve(router, http.MethodPost, "/wishlist/l2/select", "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[wishlistPayload](t, rr.Body.Bytes())
	assert.Equal(t, []string{"l2"}, selectedIDs(got.Items))

	rr = serve(router, http.MethodPost, "/wishlist/missing/select", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, http.MethodPost, "/wishlist/select-all", "")
	got = decode[wishlistPayload](t, rr.Body.Bytes())
	assert.ElementsMatch(t, []string{"l1", "l2", "l3"}, selectedIDs(got.Items))

	rr = serve(router, http.MethodDelete, "/wishlist/selection", "")
	got = decode[wishlistPayload](t, rr.Body.Bytes())
	assert.Empty(t, selectedIDs(got.Items))

	rr = serve(router, http.MethodPost, "/wishlist/remove-selected", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRemoveSelectedWishlist_PartialFailure(t *testing.T) {
	api := new(MockAPI)
	api.On("Wishlist", mock.Anything).Return([]models.WishlistItem{
		saved("w1", "l1"), saved("w2", "l2"),
	}, nil).Once()
	api.On("RemoveFromWishlist", mock.Anything, "l1").Return(nil).Once()
	api.On("RemoveFromWishlist", mock.Anything, "l2").
		Return(&apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "Server error"}).Once()

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	router := touristRouter(h)

	serve(router, http.MethodPost, "/wishlist/select-all", "")
	rr := serve(router, http.MethodPost, "/wishlist/remove-selected", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = serve(router, http.MethodGet, "/wishlist", "")
	got := decode[wishlistPayload](t, rr.Body.Bytes())
	require.Len(t, got.Items, 1)
	assert.Equal(t, "l2", got.Items[0].ListingID)
	api.AssertExpectations(t)
}

func TestAddToWishlist(t *testing.T) {
	api := new(MockAPI)
	api.On("Wishlist", mock.Anything).Return([]models.WishlistItem{saved("w1", "l1")}, nil).Once()
	api.On("AddToWishlist", mock.Anything, "l2").Return(saved("w2", "l2"), nil).Once()

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	router := touristRouter(h)

	rr := serve(router, http.MethodPost, "/wishlist", `{"listingId":"l2"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[wishlistPayload](t, rr.Body.Bytes())
	assert.Len(t, got.Items, 2)

	rr = serve(router, http.MethodPost, "/wishlist", `{"listingId":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	api.AssertExpectations(t)
}

func TestRemoveFromWishlist_Failure(t *testing.T) {
	api := new(MockAPI)
	api.On("Wishlist", mock.Anything).Return([]models.WishlistItem{saved("w1", "l1")}, nil).Once()
	api.On("RemoveFromWishlist", mock.Anything, "l1").Return(errors.New("boom")).Once()

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	rr := serve(touristRouter(h), http.MethodDelete, "/wishlist/l1", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
