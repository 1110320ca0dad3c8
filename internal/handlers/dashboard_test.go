package handlers

import (
	"encoding/json"
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

type bookingsPayload struct {
	State      string            `json:"state"`
	Error      string            `json:"error"`
	Items      []dto.BookingItem `json:"items"`
	Pagination dto.Pagination    `json:"pagination"`
	Pending    []string          `json:"pending"`
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func adminRouter(h *DashboardHandler) http.Handler {
	return routerFor("admin1", models.RoleAdmin, func(r chi.Router) {
		r.Get("/bookings", h.AdminBookings)
		r.Post("/bookings/refresh", h.RefreshAdminBookings)
		r.Patch("/bookings/{id}/status", h.UpdateAdminBookingStatus)
		r.Get("/users", h.AdminUsers)
		r.Patch("/users/{id}/role", h.ChangeUserRole)
	})
}

func TestAdminBookings_LoadsOnceAndFilters(t *testing.T) {
	api := new(MockAPI)
	api.On("AllBookings", mock.Anything).Return([]models.Booking{
		booking("b1", models.StatusPending, testNow.AddDate(0, 0, 3)),
		booking("b2", models.StatusConfirmed, testNow.AddDate(0, 0, 5)),
	}, nil).Once()

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	router := adminRouter(h)

	rr := serve(router, http.MethodGet, "/bookings", "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[bookingsPayload](t, rr.Body.Bytes())
	assert.Equal(t, "ready", got.State)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.Pagination.Total)
	assert.Equal(t, []string{}, got.Pending)

	rr = serve(router, http.MethodGet, "/bookings?status=PENDING", "")
	require.Equal(t, http.StatusOK, rr.Code)
	got = decode[bookingsPayload](t, rr.Body.Bytes())
	require.Len(t, got.Items, 1)
	assert.Equal(t, "b1", got.Items[0].ID)
	assert.Equal(t, "Pending", got.Items[0].StatusLabel)

	// criteria are kept by the session
	rr = serve(router, http.MethodGet, "/bookings", "")
	got = decode[bookingsPayload](t, rr.Body.Bytes())
	assert.Len(t, got.Items, 1)

	api.AssertNumberOfCalls(t, "AllBookings", 1)
}

func TestAdminBookings_ReadFailureRendersErrorState(t *testing.T) {
	api := new(MockAPI)
	api.On("AllBookings", mock.Anything).Return(nil, &apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "Server exploded"})

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	rr := serve(adminRouter(h), http.MethodGet, "/bookings", "")

	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[bookingsPayload](t, rr.Body.Bytes())
	assert.Equal(t, "error", got.State)
	assert.Equal(t, "Server exploded", got.Error)
	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.Pagination.TotalPages)
}

func TestAdminBookings_UnauthorizedUpstream(t *testing.T) {
	api := new(MockAPI)
	api.On("AllBookings", mock.Anything).Return(nil, &apiclient.APIError{StatusCode: http.StatusUnauthorized, Message: "Not authorized"})

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	rr := serve(adminRouter(h), http.MethodPost, "/bookings/refresh", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Not authorized")
}

func TestUpdateAdminBookingStatus(t *testing.T) {
	t.Run("success patches the row", func(t *testing.T) {
		api := new(MockAPI)
		api.On("AllBookings", mock.Anything).Return([]models.Booking{
			booking("b1", models.StatusPending, testNow.AddDate(0, 0, 3)),
		}, nil).Once()
		api.On("UpdateBookingStatus", mock.Anything, "b1", models.StatusConfirmed).Return(nil).Once()

		h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
		rr := serve(adminRouter(h), http.MethodPatch, "/bookings/b1/status", `{"status":"confirmed"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[bookingsPayload](t, rr.Body.Bytes())
		require.Len(t, got.Items, 1)
		assert.Equal(t, "CONFIRMED", got.Items[0].Status)
		api.AssertExpectations(t)
	})

	t.Run("upstream rejection keeps status and message", func(t *testing.T) {
		api := new(MockAPI)
		api.On("AllBookings", mock.Anything).Return([]models.Booking{
			booking("b1", models.StatusCompleted, testNow.AddDate(0, 0, -3)),
		}, nil).Once()
		api.On("UpdateBookingStatus", mock.Anything, "b1", models.StatusPending).
			Return(&apiclient.APIError{StatusCode: http.StatusBadRequest, Message: "Invalid status transition"}).Once()

		h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
		router := adminRouter(h)
		rr := serve(router, http.MethodPatch, "/bookings/b1/status", `{"status":"PENDING"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decode[dto.ErrorResponse](t, rr.Body.Bytes())
		assert.Equal(t, "Invalid status transition", errResp.Message)

		rr = serve(router, http.MethodGet, "/bookings", "")
		got := decode[bookingsPayload](t, rr.Body.Bytes())
		require.Len(t, got.Items, 1)
		assert.Equal(t, "COMPLETED", got.Items[0].Status)
	})

	t.Run("unknown status is rejected locally", func(t *testing.T) {
		api := new(MockAPI)
		h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
		rr := serve(adminRouter(h), http.MethodPatch, "/bookings/b1/status", `{"status":"LOST"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		api.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		api := new(MockAPI)
		api.On("AllBookings", mock.Anything).Return([]models.Booking{}, nil).Once()
		h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
		rr := serve(adminRouter(h), http.MethodPatch, "/bookings/nope/status", `{"status":"CONFIRMED"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		api.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestChangeUserRole_Validation(t *testing.T) {
	api := new(MockAPI)
	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())

	rr := serve(adminRouter(h), http.MethodPatch, "/users/u1/role", `{"role":"KING"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(adminRouter(h), http.MethodPatch, "/users/u1/role", `{"role":"GUIDE","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWriteActionError_UnreachableAPI(t *testing.T) {
	api := new(MockAPI)
	api.On("AllBookings", mock.Anything).Return([]models.Booking{
		booking("b1", models.StatusPending, testNow.AddDate(0, 0, 3)),
	}, nil).Once()
	api.On("UpdateBookingStatus", mock.Anything, "b1", models.StatusConfirmed).
		Return(&apiclient.APIError{Message: "Unable to reach server", Err: errors.New("dial tcp: refused")}).Once()

	h := NewDashboardHandler(newTestRegistry(api), nil, testClock, zap.NewNop())
	rr := serve(adminRouter(h), http.MethodPatch, "/bookings/b1/status", `{"status":"CONFIRMED"}`)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
