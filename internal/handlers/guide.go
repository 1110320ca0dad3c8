package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/utils"
)

var guideListingsBoard = listingsBoard((*dashboard.Session).GuideListings)

var guideRequestsBoard = boardSpec[*dashboard.GuideRequests]{
	get: (*dashboard.Session).GuideRequests,
	query: func(d *dashboard.GuideRequests, r *http.Request, u utils.AuthUser) {
		applyQuery(d.BookingBoard, r, bookingQuery(u.ID))
	},
	render: func(p presenter, d *dashboard.GuideRequests) any {
		v := d.View(p.now)
		return dashboardResponse(v, presentAll(v.Items, p.booking), d.Stats(p.now))
	},
}

var guideUpcomingBoard = boardSpec[*dashboard.GuideUpcoming]{
	get: (*dashboard.Session).GuideUpcoming,
	query: func(d *dashboard.GuideUpcoming, r *http.Request, u utils.AuthUser) {
		applyQuery(d.BookingBoard, r, bookingQuery(u.ID))
	},
	render: func(p presenter, d *dashboard.GuideUpcoming) any {
		v := d.View(p.now)
		return dashboardResponse(v, presentAll(v.Items, p.booking), d.Stats(p.now))
	},
}

// GuideListings handles GET /api/guide/listings
// @Summary Guide's own listings
// @Tags guide
// @Produce json
// @Param search query string false "Title, description, city or category"
// @Param category query string false "Category or all"
// @Param active query string false "all, active, inactive"
// @Param sort query string false "newest, price-low, price-high, duration, title-asc, title-desc"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.DashboardResponse[dto.ListingItem,stats.ListingStats]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/guide/listings [get]
func (h *DashboardHandler) GuideListings(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, guideListingsBoard, false)
}

// RefreshGuideListings handles POST /api/guide/listings/refresh
// @Summary Refetch guide listings
// @Tags guide
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.ListingItem,stats.ListingStats]
// @Router /api/guide/listings/refresh [post]
func (h *DashboardHandler) RefreshGuideListings(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, guideListingsBoard, true)
}

// ToggleGuideListing handles PATCH /api/guide/listings/{id}/toggle-active
// @Summary Publish or hide one of the guide's listings
// @Tags guide
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.DashboardResponse[dto.ListingItem,stats.ListingStats]
// @Router /api/guide/listings/{id}/toggle-active [patch]
func (h *DashboardHandler) ToggleGuideListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, guideListingsBoard, func(ctx context.Context, d *dashboard.Listings) error {
		return d.ToggleActive(ctx, id)
	})
}

// DeleteGuideListing handles DELETE /api/guide/listings/{id}
// @Summary Delete one of the guide's listings
// @Tags guide
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.DashboardResponse[dto.ListingItem,stats.ListingStats]
// @Router /api/guide/listings/{id} [delete]
func (h *DashboardHandler) DeleteGuideListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, guideListingsBoard, func(ctx context.Context, d *dashboard.Listings) error {
		return d.Delete(ctx, id)
	})
}

// GuideRequests handles GET /api/guide/requests
// @Summary Pending booking requests
// @Tags guide
// @Produce json
// @Param search query string false "Listing title or city"
// @Param date query string false "all, today, upcoming, past"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.GuideBookingStats]
// @Router /api/guide/requests [get]
func (h *DashboardHandler) GuideRequests(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, guideRequestsBoard, false)
}

// RefreshGuideRequests handles POST /api/guide/requests/refresh
// @Summary Refetch pending requests
// @Tags guide
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.GuideBookingStats]
// @Router /api/guide/requests/refresh [post]
func (h *DashboardHandler) RefreshGuideRequests(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, guideRequestsBoard, true)
}

// ApproveRequest handles POST /api/guide/requests/{id}/approve
// @Summary Confirm a pending request
// @Tags guide
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.GuideBookingStats]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/guide/requests/{id}/approve [post]
func (h *DashboardHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, guideRequestsBoard, func(ctx context.Context, d *dashboard.GuideRequests) error {
		return d.Approve(ctx, id)
	})
}

// RejectRequest handles POST /api/guide/requests/{id}/reject
// @Summary Decline a pending request
// @Tags guide
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.GuideBookingStats]
// @Router /api/guide/requests/{id}/reject [post]
func (h *DashboardHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, guideRequestsBoard, func(ctx context.Context, d *dashboard.GuideRequests) error {
		return d.Reject(ctx, id)
	})
}

// GuideUpcoming handles GET /api/guide/upcoming
// @Summary Upcoming confirmed tours
// @Tags guide
// @Produce json
// @Param search query string false "Listing title or city"
// @Param date query string false "upcoming or today"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.GuideBookingStats]
// @Router /api/guide/upcoming [get]
func (h *DashboardHandler) GuideUpcoming(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, guideUpcomingBoard, false)
}

// RefreshGuideUpcoming handles POST /api/guide/upcoming/refresh
// @Summary Refetch upcoming tours
// @Tags guide
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.GuideBookingStats]
// @Router /api/guide/upcoming/refresh [post]
func (h *DashboardHandler) RefreshGuideUpcoming(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, guideUpcomingBoard, true)
}

// CompleteTour handles POST /api/guide/upcoming/{id}/complete
// @Summary Mark a tour as completed
// @Tags guide
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.GuideBookingStats]
// @Router /api/guide/upcoming/{id}/complete [post]
func (h *DashboardHandler) CompleteTour(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, guideUpcomingBoard, func(ctx context.Context, d *dashboard.GuideUpcoming) error {
		return d.Complete(ctx, id)
	})
}

// CancelTour handles POST /api/guide/upcoming/{id}/cancel
// @Summary Cancel a confirmed tour
// @Tags guide
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.GuideBookingStats]
// @Router /api/guide/upcoming/{id}/cancel [post]
func (h *DashboardHandler) CancelTour(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, guideUpcomingBoard, func(ctx context.Context, d *dashboard.GuideUpcoming) error {
		return d.Cancel(ctx, id)
	})
}
