package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/apiclient"
	"TOURBOOK_WEB/internal/config"
	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/handlers"
	"TOURBOOK_WEB/internal/metrics"
	"TOURBOOK_WEB/internal/middleware"
	"TOURBOOK_WEB/internal/models"
)

var testAuth = &config.AuthConfig{JWTSecret: "test-secret", CookieName: "token"}

// upstream fakes the marketplace API and records the auth cookie it saw.
func upstream(t *testing.T, seen *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("token"); err == nil {
			*seen = c.Value
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/health":
			w.Write([]byte(`{"success":true,"data":{}}`))
		case "/listings":
			w.Write([]byte(`{"success":true,"data":[
				{"_id":"l1","title":"Alfama walk","city":"Lisbon","category":"HISTORY","fee":20,"duration":2,"maxGroupSize":6,"isActive":true,"guide":{"_id":"g1","name":"Ana"}},
				{"_id":"l2","title":"Hidden","city":"Porto","category":"FOOD","isActive":false,"guide":"g1"}
			]}`))
		case "/bookings/my-bookings":
			w.Write([]byte(`{"success":true,"data":[
				{"_id":"b1","listing":{"_id":"l1","title":"Alfama walk","city":"Lisbon"},"user":"t1","date":"2026-12-01T10:00:00Z","groupSize":2,"totalPrice":40,"status":"CONFIRMED"}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRouter(t *testing.T, seen *string) (http.Handler, *metrics.Metrics) {
	t.Helper()
	srv := upstream(t, seen)
	m := metrics.New()
	log := zap.NewNop()
	api := apiclient.New(srv.URL, 5*time.Second, log, m)
	registry := dashboard.NewRegistry(dashboard.Deps{API: api, Logger: log, Metrics: m, PageSize: 10}, time.Hour)

	return SetupRoutes(Handlers{
		Health:    handlers.NewHealthHandler(api),
		Catalog:   handlers.NewCatalogHandler(api, 12, nil, nil, log),
		Bookings:  handlers.NewBookingHandler(api, registry, nil, nil, log),
		Dashboard: handlers.NewDashboardHandler(registry, nil, nil, log),
		Session:   handlers.NewSessionHandler(registry, log),
	}, testAuth, m, log), m
}

func tokenFor(t *testing.T, id string, role models.Role) string {
	t.Helper()
	tok, err := middleware.GenerateToken(id, id+"@example.com", role, time.Hour, testAuth)
	require.NoError(t, err)
	return tok
}

func get(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestPublicRoutes(t *testing.T) {
	var seen string
	router, _ := newRouter(t, &seen)

	rr := get(router, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = get(router, "/readyz", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = get(router, "/api/listings", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var catalog struct {
		Items []struct {
			ID        string `json:"id"`
			GuideName string `json:"guide_name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &catalog))
	require.Len(t, catalog.Items, 1)
	assert.Equal(t, "l1", catalog.Items[0].ID)
	assert.Equal(t, "Ana", catalog.Items[0].GuideName)

	rr = get(router, "/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDashboardRoutes_RequireAuth(t *testing.T) {
	var seen string
	router, _ := newRouter(t, &seen)

	for _, path := range []string{"/api/admin/bookings", "/api/guide/requests", "/api/tourist/trips", "/api/notifications"} {
		rr := get(router, path, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}

	rr := get(router, "/api/tourist/trips", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDashboardRoutes_RoleGating(t *testing.T) {
	var seen string
	router, _ := newRouter(t, &seen)
	tourist := tokenFor(t, "t1", models.RoleTourist)

	rr := get(router, "/api/admin/users", tourist)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = get(router, "/api/guide/listings", tourist)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	guide := tokenFor(t, "g1", models.RoleGuide)
	rr = get(router, "/api/tourist/wishlist", guide)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestTouristTrips_EndToEnd(t *testing.T) {
	var seen string
	router, _ := newRouter(t, &seen)
	tourist := tokenFor(t, "t1", models.RoleTourist)

	rr := get(router, "/api/tourist/trips", tourist)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, tourist, seen, "auth cookie must reach the API")

	var view struct {
		State string `json:"state"`
		Items []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, "ready", view.State)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "CONFIRMED", view.Items[0].Status)

	rr = get(router, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `endpoint="bookings.mine"`))
}

func TestCancelUnknownTrip(t *testing.T) {
	var seen string
	router, _ := newRouter(t, &seen)
	tourist := tokenFor(t, "t1", models.RoleTourist)

	req := httptest.NewRequest(http.MethodPost, "/api/tourist/trips/zzz/cancel", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: tourist})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
