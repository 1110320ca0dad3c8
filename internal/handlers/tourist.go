package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/utils"
)

var touristTripsBoard = boardSpec[*dashboard.TouristTrips]{
	get: (*dashboard.Session).TouristTrips,
	query: func(d *dashboard.TouristTrips, r *http.Request, u utils.AuthUser) {
		applyQuery(d.BookingBoard, r, bookingQuery(u.ID))
	},
	render: func(p presenter, d *dashboard.TouristTrips) any {
		v := d.View(p.now)
		return dashboardResponse(v, presentAll(v.Items, p.booking), d.Stats(p.now))
	},
}

var touristWishlistBoard = boardSpec[*dashboard.TouristWishlist]{
	get: (*dashboard.Session).TouristWishlist,
	query: func(d *dashboard.TouristWishlist, r *http.Request, _ utils.AuthUser) {
		applyQuery(d.Board, r, wishlistQuery)
	},
	render: func(p presenter, d *dashboard.TouristWishlist) any {
		v := d.View(p.now)
		selected := make(map[string]bool)
		for _, id := range d.Selected() {
			selected[id] = true
		}
		return dashboardResponse(v, presentAll(v.Items, p.wishlistEntry(selected)), d.Stats())
	},
}

// TouristTrips handles GET /api/tourist/trips
// @Summary Tourist's trips
// @Tags tourist
// @Produce json
// @Param search query string false "Listing title or city"
// @Param status query string false "Booking status or all"
// @Param date query string false "all, today, upcoming, past"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.TripStats]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/tourist/trips [get]
func (h *DashboardHandler) TouristTrips(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, touristTripsBoard, false)
}

// RefreshTouristTrips handles POST /api/tourist/trips/refresh
// @Summary Refetch trips
// @Tags tourist
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.TripStats]
// @Router /api/tourist/trips/refresh [post]
func (h *DashboardHandler) RefreshTouristTrips(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, touristTripsBoard, true)
}

// CancelTrip handles POST /api/tourist/trips/{id}/cancel
// @Summary Cancel a booking
// @Tags tourist
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.TripStats]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/tourist/trips/{id}/cancel [post]
func (h *DashboardHandler) CancelTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, touristTripsBoard, func(ctx context.Context, d *dashboard.TouristTrips) error {
		return d.Cancel(ctx, id)
	})
}

// TouristWishlist handles GET /api/tourist/wishlist
// @Summary Tourist's wishlist
// @Tags tourist
// @Produce json
// @Param search query string false "Listing title, city or guide"
// @Param category query string false "Category or all"
// @Param sort query string false "recent, price-low, price-high, duration, title-asc, title-desc"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.DashboardResponse[dto.WishlistEntry,stats.WishlistStats]
// @Router /api/tourist/wishlist [get]
func (h *DashboardHandler) TouristWishlist(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, touristWishlistBoard, false)
}

// RefreshTouristWishlist handles POST /api/tourist/wishlist/refresh
// @Summary Refetch the wishlist
// @Tags tourist
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.WishlistEntry,stats.WishlistStats]
// @Router /api/tourist/wishlist/refresh [post]
func (h *DashboardHandler) RefreshTouristWishlist(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, touristWishlistBoard, true)
}

// AddToWishlist handles POST /api/tourist/wishlist
// @Summary Save a listing
// @Tags tourist
// @Accept json
// @Produce json
// @Param payload body dto.WishlistAddRequest true "Listing to save"
// @Success 200 {object} dto.DashboardResponse[dto.WishlistEntry,stats.WishlistStats]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tourist/wishlist [post]
func (h *DashboardHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req dto.WishlistAddRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	listingID := strings.TrimSpace(req.ListingID)
	if listingID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "listingId is required")
		return
	}
	serveAction(h, w, r, touristWishlistBoard, func(ctx context.Context, d *dashboard.TouristWishlist) error {
		return d.Add(ctx, listingID)
	})
}

// RemoveFromWishlist handles DELETE /api/tourist/wishlist/{listingId}
// @Summary Remove a saved listing
// @Tags tourist
// @Produce json
// @Param listingId path string true "Listing ID"
// @Success 200 {object} dto.DashboardResponse[dto.WishlistEntry,stats.WishlistStats]
// @Router /api/tourist/wishlist/{listingId} [delete]
func (h *DashboardHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingId")
	serveAction(h, w, r, touristWishlistBoard, func(ctx context.Context, d *dashboard.TouristWishlist) error {
		return d.Remove(ctx, listingID)
	})
}

// ToggleWishlistSelection handles POST /api/tourist/wishlist/{listingId}/select
// @Summary Select or unselect a saved listing
// @Tags tourist
// @Produce json
// @Param listingId path string true "Listing ID"
// @Success 200 {object} dto.DashboardResponse[dto.WishlistEntry,stats.WishlistStats]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tourist/wishlist/{listingId}/select [post]
func (h *DashboardHandler) ToggleWishlistSelection(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingId")
	serveAction(h, w, r, touristWishlistBoard, func(_ context.Context, d *dashboard.TouristWishlist) error {
		if !d.ToggleSelected(listingID) {
			return dashboard.ErrNotFound
		}
		return nil
	})
}

// SelectAllWishlist handles POST /api/tourist/wishlist/select-all
// @Summary Select every item matching the current filters
// @Tags tourist
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.WishlistEntry,stats.WishlistStats]
// @Router /api/tourist/wishlist/select-all [post]
func (h *DashboardHandler) SelectAllWishlist(w http.ResponseWriter, r *http.Request) {
	serveAction(h, w, r, touristWishlistBoard, func(_ context.Context, d *dashboard.TouristWishlist) error {
		d.SelectAll(h.clock().In(h.loc))
		return nil
	})
}

// ClearWishlistSelection handles DELETE /api/tourist/wishlist/selection
// @Summary Clear the selection
// @Tags tourist
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.WishlistEntry,stats.WishlistStats]
// @Router /api/tourist/wishlist/selection [delete]
func (h *DashboardHandler) ClearWishlistSelection(w http.ResponseWriter, r *http.Request) {
	serveAction(h, w, r, touristWishlistBoard, func(_ context.Context, d *dashboard.TouristWishlist) error {
		d.ClearSelection()
		return nil
	})
}

// RemoveSelectedWishlist handles POST /api/tourist/wishlist/remove-selected
// @Summary Remove every selected item
// @Tags tourist
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.WishlistEntry,stats.WishlistStats]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tourist/wishlist/remove-selected [post]
func (h *DashboardHandler) RemoveSelectedWishlist(w http.ResponseWriter, r *http.Request) {
	serveAction(h, w, r, touristWishlistBoard, func(ctx context.Context, d *dashboard.TouristWishlist) error {
		if len(d.Selected()) == 0 {
			return errNothingSelected
		}
		_, err := d.RemoveSelected(ctx)
		return err
	})
}

var errNothingSelected = errors.New("no wishlist items selected")
