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

	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/models"
)

func TestNotifications_DrainAfterAction(t *testing.T) {
	api := new(MockAPI)
	api.On("MyBookings", mock.Anything).Return([]models.Booking{
		booking("b1", models.StatusPending, testNow.AddDate(0, 0, 2)),
	}, nil).Once()
	api.On("CancelBooking", mock.Anything, "b1").Return(nil).Once()

	registry := newTestRegistry(api)
	dh := NewDashboardHandler(registry, nil, testClock, zap.NewNop())
	sh := NewSessionHandler(registry, zap.NewNop())
	router := routerFor("t1", models.RoleTourist, func(r chi.Router) {
		r.Post("/trips/{id}/cancel", dh.CancelTrip)
		r.Get("/notifications", sh.Notifications)
		r.Delete("/session", sh.EndSession)
	})

	rr := serve(router, http.MethodGet, "/notifications", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[dto.NotificationsResponse](t, rr.Body.Bytes()).Notifications)

	rr = serve(router, http.MethodPost, "/trips/b1/cancel", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodGet, "/notifications", "")
	got := decode[dto.NotificationsResponse](t, rr.Body.Bytes())
	require.Len(t, got.Notifications, 1)
	assert.Equal(t, "success", got.Notifications[0].Kind)
	assert.NotEmpty(t, got.Notifications[0].ID)

	rr = serve(router, http.MethodGet, "/notifications", "")
	assert.Empty(t, decode[dto.NotificationsResponse](t, rr.Body.Bytes()).Notifications)

	rr = serve(router, http.MethodDelete, "/session", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, registry.Len())
}

func TestHealthHandler(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		api := new(MockAPI)
		api.On("Ping", mock.Anything).Return(nil)
		h := NewHealthHandler(api)

		rr := serve(http.HandlerFunc(h.ReadinessCheck), http.MethodGet, "/readyz", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ready", decode[dto.HealthResponse](t, rr.Body.Bytes()).Status)
	})

	t.Run("degraded", func(t *testing.T) {
		api := new(MockAPI)
		api.On("Ping", mock.Anything).Return(errors.New("Unable to reach server"))
		h := NewHealthHandler(api)

		rr := serve(http.HandlerFunc(h.ReadinessCheck), http.MethodGet, "/readyz", "")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), "Unable to reach server")
	})

	t.Run("liveness skips upstream", func(t *testing.T) {
		api := new(MockAPI)
		h := NewHealthHandler(api)

		rr := serve(http.HandlerFunc(h.LivenessCheck), http.MethodGet, "/livez", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		api.AssertNotCalled(t, "Ping", mock.Anything)
	})
}
