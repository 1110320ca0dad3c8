package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/apiclient"
	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/utils"
)

// BookingAPI is what booking submission needs from the marketplace API.
type BookingAPI interface {
	GetListing(ctx context.Context, id string) (models.Listing, error)
	CreateBooking(ctx context.Context, in apiclient.BookingRequest) (models.Booking, error)
}

// BookingHandler submits new bookings for tourists
type BookingHandler struct {
	api      BookingAPI
	registry *dashboard.Registry
	loc      *time.Location
	clock    func() time.Time
	logger   *zap.Logger
}

// NewBookingHandler creates a BookingHandler. clock may be nil.
func NewBookingHandler(api BookingAPI, registry *dashboard.Registry, loc *time.Location, clock func() time.Time, logger *zap.Logger) *BookingHandler {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &BookingHandler{api: api, registry: registry, loc: loc, clock: clock, logger: logger.Named("BookingHandler")}
}

// parseTourDate reads a date-only value as a calendar day in loc; full
// timestamps keep their instant.
func parseTourDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == len("2006-01-02") {
		return time.ParseInLocation("2006-01-02", s, loc)
	}
	t, err := models.ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CreateBooking handles POST /api/bookings
// @Summary Book a tour
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.ListingID = strings.TrimSpace(req.ListingID)
	if req.ListingID == "" || strings.TrimSpace(req.Date) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "listingId and date are required")
		return
	}
	date, err := parseTourDate(req.Date, h.loc)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	if startOfDay(date).Before(startOfDay(h.clock().In(h.loc))) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "date cannot be in the past")
		return
	}
	if req.GroupSize < 1 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "groupSize must be at least 1")
		return
	}

	ctx := apiclient.FromRequest(r)
	listing, err := h.api.GetListing(ctx, req.ListingID)
	var apiErr *apiclient.APIError
	switch {
	case err == nil:
		if listing.MaxGroupSize > 0 && req.GroupSize > listing.MaxGroupSize {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error",
				fmt.Sprintf("groupSize cannot exceed %d for this tour", listing.MaxGroupSize))
			return
		}
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", apiErr.Message)
		return
	default:
		// the API validates again; a failed lookup only skips the local check
		h.logger.Warn("Listing lookup failed, skipping group size check",
			zap.String("listing_id", req.ListingID), zap.Error(err))
	}

	booking, err := h.api.CreateBooking(ctx, apiclient.BookingRequest{
		ListingID: req.ListingID,
		Date:      date.UTC().Format(time.RFC3339),
		GroupSize: req.GroupSize,
	})
	if err != nil {
		writeActionError(w, err)
		return
	}

	h.logger.Info("Booking created", zap.String("user_id", userID), zap.String("booking_id", booking.ID))
	if s, ok := h.registry.Lookup(userID); ok {
		trips := s.TouristTrips()
		if st, _ := trips.State(); st != dashboard.StateIdle {
			if err := trips.Load(ctx); err != nil {
				h.logger.Warn("Failed to refresh trips after booking", zap.Error(err))
			}
		}
	}

	p := presenter{loc: h.loc, now: h.clock().In(h.loc)}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateBookingResponse{Booking: p.booking(booking)})
}
