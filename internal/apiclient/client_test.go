package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/metrics"
	"TOURBOOK_WEB/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	m := metrics.New()
	return New(srv.URL+"/", 2*time.Second, zap.NewNop(), m), m
}

func TestClient_ListBookings(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bookings/my-bookings", r.URL.Path)
		io.WriteString(w, `{"success":true,"data":[
			{"_id":"b1","listing":{"_id":"l1","title":"Old Town Walk","city":"Porto"},"status":"PENDING","date":"2026-10-17T09:00:00Z"},
			{"_id":"b2","listing":"l2","status":"CONFIRMED"}
		]}`)
	})

	got, err := client.MyBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Old Town Walk", got[0].ListingTitle())
	assert.Equal(t, "l2", got[1].Listing.ID)
	assert.Equal(t, models.StatusConfirmed, got[1].Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("bookings.mine", "ok")))
}

func TestClient_ReadsDegradeOnMalformedData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing data", `{"success":true}`},
		{"null data", `{"success":true,"data":null}`},
		{"object instead of array", `{"success":true,"data":{"bookings":[]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			})

			got, err := client.AllBookings(context.Background())

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestClient_MutationFailureUsesBodyMessage(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bookings/b1/status", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CONFIRMED", body["status"])

		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"success":false,"message":"Invalid status transition"}`)
	})

	err := client.UpdateBookingStatus(context.Background(), "b1", models.StatusConfirmed)

	require.Error(t, err)
	assert.Equal(t, "Invalid status transition", err.Error())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("bookings.status", "error")))
}

func TestClient_Fallbacks(t *testing.T) {
	t.Run("non-json error body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, "<html>oops</html>")
		})

		_, err := client.GuideBookings(context.Background())

		require.Error(t, err)
		assert.Equal(t, "Failed to fetch bookings", err.Error())
	})

	t.Run("success false behind 200", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"success":false}`)
		})

		err := client.DeleteUser(context.Background(), "u1")

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Failed to delete user", apiErr.Message)
		assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := New(srv.URL, time.Second, zap.NewNop(), nil)

		_, err := client.ListUsers(context.Background())

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Failed to fetch users", apiErr.Message)
		assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus())
		assert.NotNil(t, apiErr.Unwrap())
	})
}

func TestClient_TruncatedBody(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		io.WriteString(w, `{"success":true,"data":[`)
	})

	_, err := client.MyBookings(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to fetch bookings", apiErr.Message)
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("bookings.mine", "error")))
}

func TestClient_Unauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"success":false,"message":"Not authenticated"}`)
	})

	_, err := client.Wishlist(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Not authenticated", err.Error())
}

func TestClient_ForwardsCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("token")
		require.NoError(t, err)
		assert.Equal(t, "abc", ck.Value)
		assert.Equal(t, "Bearer xyz", r.Header.Get("Authorization"))
		io.WriteString(w, `{"success":true,"data":[]}`)
	})

	ctx := WithCredentials(context.Background(), []*http.Cookie{{Name: "token", Value: "abc"}}, "Bearer xyz")
	_, err := client.ListListings(ctx)

	require.NoError(t, err)
}

func TestClient_FromRequest(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "s1", ck.Value)
		assert.Empty(t, r.Header.Get("Authorization"))
		io.WriteString(w, `{"success":true}`)
	})

	in := httptest.NewRequest(http.MethodGet, "/api/tourist/wishlist", nil)
	in.AddCookie(&http.Cookie{Name: "session", Value: "s1"})

	require.NoError(t, client.Ping(FromRequest(in)))
}

func TestClient_AddToWishlist(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "l9", body["listingId"])
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"success":true,"data":{"_id":"w1","listing":{"_id":"l9","fee":80}}}`)
	})

	item, err := client.AddToWishlist(context.Background(), "l9")

	require.NoError(t, err)
	assert.Equal(t, "w1", item.ID)
	assert.Equal(t, "l9", item.ListingID())
}

func TestClient_PathEscaping(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings/a%2Fb/toggle-active", r.URL.EscapedPath())
		io.WriteString(w, `{"success":true}`)
	})

	require.NoError(t, client.ToggleListingActive(context.Background(), "a/b"))
}
