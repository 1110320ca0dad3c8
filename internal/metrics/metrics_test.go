package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveAPI("GET /bookings/guide", nil, time.Now())
	m.ObserveAPI("GET /bookings/guide", errors.New("boom"), time.Now())
	m.ObserveLoad("admin_bookings", nil)
	m.ObserveMutation("guide_requests", "approve", errors.New("nope"))
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("GET /bookings/guide", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("GET /bookings/guide", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DashboardLoads.WithLabelValues("admin_bookings", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DashboardMutation.WithLabelValues("guide_requests", "approve", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAPI("x", nil, time.Now())
		m.ObserveLoad("x", nil)
		m.ObserveMutation("x", "y", nil)
		m.SessionOpened()
		m.SessionClosed()
	})
}
