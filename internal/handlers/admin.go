package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/utils"
)

var adminBookingsBoard = boardSpec[*dashboard.AdminBookings]{
	get: (*dashboard.Session).AdminBookings,
	query: func(d *dashboard.AdminBookings, r *http.Request, u utils.AuthUser) {
		applyQuery(d.BookingBoard, r, bookingQuery(u.ID))
	},
	render: func(p presenter, d *dashboard.AdminBookings) any {
		v := d.View(p.now)
		return dashboardResponse(v, presentAll(v.Items, p.booking), d.Stats())
	},
}

var adminUsersBoard = boardSpec[*dashboard.AdminUsers]{
	get: (*dashboard.Session).AdminUsers,
	query: func(d *dashboard.AdminUsers, r *http.Request, _ utils.AuthUser) {
		applyQuery(d.Board, r, userQuery)
	},
	render: func(p presenter, d *dashboard.AdminUsers) any {
		v := d.View(p.now)
		return dashboardResponse(v, presentAll(v.Items, p.user), d.Stats())
	},
}

var adminListingsBoard = listingsBoard((*dashboard.Session).AdminListings)

func listingsBoard(get func(*dashboard.Session) *dashboard.Listings) boardSpec[*dashboard.Listings] {
	return boardSpec[*dashboard.Listings]{
		get: get,
		query: func(d *dashboard.Listings, r *http.Request, _ utils.AuthUser) {
			applyQuery(d.ListingBoard, r, listingQuery)
		},
		render: func(p presenter, d *dashboard.Listings) any {
			v := d.View(p.now)
			return dashboardResponse(v, presentAll(v.Items, p.listing), d.Stats())
		},
	}
}

// AdminBookings handles GET /api/admin/bookings
// @Summary Admin booking dashboard
// @Tags admin
// @Produce json
// @Param search query string false "Listing title or city"
// @Param status query string false "PENDING, CONFIRMED, COMPLETED, CANCELLED, REJECTED or all"
// @Param date query string false "all, today, upcoming, past"
// @Param type query string false "all, asTourist, asGuide"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.BookingStats]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/admin/bookings [get]
func (h *DashboardHandler) AdminBookings(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, adminBookingsBoard, false)
}

// RefreshAdminBookings handles POST /api/admin/bookings/refresh
// @Summary Refetch admin bookings
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.BookingStats]
// @Router /api/admin/bookings/refresh [post]
func (h *DashboardHandler) RefreshAdminBookings(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, adminBookingsBoard, true)
}

// UpdateAdminBookingStatus handles PATCH /api/admin/bookings/{id}/status
// @Summary Change a booking status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param payload body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} dto.DashboardResponse[dto.BookingItem,stats.BookingStats]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/admin/bookings/{id}/status [patch]
func (h *DashboardHandler) UpdateAdminBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	status, ok := models.ParseBookingStatus(req.Status)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "status must be PENDING, CONFIRMED, COMPLETED, CANCELLED or REJECTED")
		return
	}
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, adminBookingsBoard, func(ctx context.Context, d *dashboard.AdminBookings) error {
		return d.UpdateStatus(ctx, id, status)
	})
}

// AdminUsers handles GET /api/admin/users
// @Summary Admin user dashboard
// @Tags admin
// @Produce json
// @Param search query string false "Name or email"
// @Param role query string false "TOURIST, GUIDE, ADMIN or all"
// @Param active query string false "all, active, inactive"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.DashboardResponse[dto.UserItem,stats.RoleStats]
// @Router /api/admin/users [get]
func (h *DashboardHandler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, adminUsersBoard, false)
}

// RefreshAdminUsers handles POST /api/admin/users/refresh
// @Summary Refetch users
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.UserItem,stats.RoleStats]
// @Router /api/admin/users/refresh [post]
func (h *DashboardHandler) RefreshAdminUsers(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, adminUsersBoard, true)
}

// ToggleUserActive handles PATCH /api/admin/users/{id}/toggle-active
// @Summary Suspend or reactivate a user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.DashboardResponse[dto.UserItem,stats.RoleStats]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/admin/users/{id}/toggle-active [patch]
func (h *DashboardHandler) ToggleUserActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, adminUsersBoard, func(ctx context.Context, d *dashboard.AdminUsers) error {
		return d.ToggleActive(ctx, id)
	})
}

// ChangeUserRole handles PATCH /api/admin/users/{id}/role
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body dto.RoleUpdateRequest true "New role"
// @Success 200 {object} dto.DashboardResponse[dto.UserItem,stats.RoleStats]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/users/{id}/role [patch]
func (h *DashboardHandler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	var req dto.RoleUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "role must be TOURIST, GUIDE or ADMIN")
		return
	}
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, adminUsersBoard, func(ctx context.Context, d *dashboard.AdminUsers) error {
		return d.ChangeRole(ctx, id, role)
	})
}

// DeleteUser handles DELETE /api/admin/users/{id}
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.DashboardResponse[dto.UserItem,stats.RoleStats]
// @Router /api/admin/users/{id} [delete]
func (h *DashboardHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, adminUsersBoard, func(ctx context.Context, d *dashboard.AdminUsers) error {
		return d.Delete(ctx, id)
	})
}

// AdminListings handles GET /api/admin/listings
// @Summary Admin listing dashboard
// @Tags admin
// @Produce json
// @Param search query string false "Title, description, city, category or guide"
// @Param category query string false "Category or all"
// @Param active query string false "all, active, inactive"
// @Param sort query string false "newest, price-low, price-high, duration, title-asc, title-desc"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.DashboardResponse[dto.ListingItem,stats.ListingStats]
// @Router /api/admin/listings [get]
func (h *DashboardHandler) AdminListings(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, adminListingsBoard, false)
}

// RefreshAdminListings handles POST /api/admin/listings/refresh
// @Summary Refetch all listings
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DashboardResponse[dto.ListingItem,stats.ListingStats]
// @Router /api/admin/listings/refresh [post]
func (h *DashboardHandler) RefreshAdminListings(w http.ResponseWriter, r *http.Request) {
	serveView(h, w, r, adminListingsBoard, true)
}

// ToggleAdminListing handles PATCH /api/admin/listings/{id}/toggle-active
// @Summary Publish or hide a listing
// @Tags admin
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.DashboardResponse[dto.ListingItem,stats.ListingStats]
// @Router /api/admin/listings/{id}/toggle-active [patch]
func (h *DashboardHandler) ToggleAdminListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, adminListingsBoard, func(ctx context.Context, d *dashboard.Listings) error {
		return d.ToggleActive(ctx, id)
	})
}

// DeleteAdminListing handles DELETE /api/admin/listings/{id}
// @Summary Delete a listing
// @Tags admin
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.DashboardResponse[dto.ListingItem,stats.ListingStats]
// @Router /api/admin/listings/{id} [delete]
func (h *DashboardHandler) DeleteAdminListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveAction(h, w, r, adminListingsBoard, func(ctx context.Context, d *dashboard.Listings) error {
		return d.Delete(ctx, id)
	})
}
