package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/metrics"
)

// Session holds one user's dashboards. Boards are created on first use and
// closed together when the session ends.
type Session struct {
	UserID string
	Feed   *Feed

	deps Deps

	mu       sync.Mutex
	lastSeen time.Time
	closers  []func()
	closed   bool

	adminBookings   *AdminBookings
	adminUsers      *AdminUsers
	adminListings   *Listings
	guideListings   *Listings
	guideRequests   *GuideRequests
	guideUpcoming   *GuideUpcoming
	touristTrips    *TouristTrips
	touristWishlist *TouristWishlist
}

func newSession(userID string, deps Deps, feedSize int) *Session {
	s := &Session{UserID: userID, lastSeen: deps.now()}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("user_id", userID))
	s.Feed = NewFeed(feedSize, deps.Clock, logger)
	deps.Notifier = s.Feed
	deps.Logger = logger
	s.deps = deps
	return s
}

// lazy returns *slot, creating it with build on first use.
func lazy[D any](s *Session, slot **D, build func(Deps) *D, closeFn func(*D)) *D {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.deps.now()
	if *slot == nil {
		d := build(s.deps)
		*slot = d
		s.closers = append(s.closers, func() { closeFn(d) })
		if s.closed {
			closeFn(d)
		}
	}
	return *slot
}

// AdminBookings returns the admin booking board.
func (s *Session) AdminBookings() *AdminBookings {
	return lazy(s, &s.adminBookings, newAdminBookings, func(d *AdminBookings) { d.Close() })
}

// AdminUsers returns the admin user board.
func (s *Session) AdminUsers() *AdminUsers {
	return lazy(s, &s.adminUsers, newAdminUsers, func(d *AdminUsers) { d.Close() })
}

// AdminListings returns the admin listing board.
func (s *Session) AdminListings() *Listings {
	return lazy(s, &s.adminListings, newAdminListings, func(d *Listings) { d.Close() })
}

// GuideListings returns the guide's own listings.
func (s *Session) GuideListings() *Listings {
	return lazy(s, &s.guideListings, newGuideListings, func(d *Listings) { d.Close() })
}

// GuideRequests returns the guide's pending requests.
func (s *Session) GuideRequests() *GuideRequests {
	return lazy(s, &s.guideRequests, newGuideRequests, func(d *GuideRequests) { d.Close() })
}

// GuideUpcoming returns the guide's upcoming confirmed bookings.
func (s *Session) GuideUpcoming() *GuideUpcoming {
	return lazy(s, &s.guideUpcoming, newGuideUpcoming, func(d *GuideUpcoming) { d.Close() })
}

// TouristTrips returns the tourist's trips.
func (s *Session) TouristTrips() *TouristTrips {
	return lazy(s, &s.touristTrips, newTouristTrips, func(d *TouristTrips) { d.Close() })
}

// TouristWishlist returns the tourist's wishlist.
func (s *Session) TouristWishlist() *TouristWishlist {
	return lazy(s, &s.touristWishlist, newTouristWishlist, func(d *TouristWishlist) { d.Close() })
}

// Close closes every board created so far.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	closers := s.closers
	s.mu.Unlock()
	for _, c := range closers {
		c()
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = s.deps.now()
	s.mu.Unlock()
}

// Registry maps user ids to sessions.
type Registry struct {
	deps     Deps
	ttl      time.Duration
	feedSize int
	logger   *zap.Logger
	metrics  *metrics.Metrics

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a Registry. A non-positive ttl disables expiry.
func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		deps:     deps,
		ttl:      ttl,
		feedSize: DefaultFeedSize,
		logger:   logger.Named("Dashboard"),
		metrics:  deps.Metrics,
		sessions: make(map[string]*Session),
	}
}

// Session returns the user's session, creating it if needed.
func (r *Registry) Session(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[userID]; ok {
		s.touch()
		return s
	}
	deps := r.deps
	deps.Logger = r.logger
	s := newSession(userID, deps, r.feedSize)
	r.sessions[userID] = s
	r.metrics.SessionOpened()
	r.logger.Debug("Session opened", zap.String("user_id", userID))
	return s
}

// Lookup returns an existing session without creating one.
func (r *Registry) Lookup(userID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	return s, ok
}

// Close ends a user's session. It reports whether one existed.
func (r *Registry) Close(userID string) bool {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()
	if !ok {
		return false
	}
	s.Close()
	r.metrics.SessionClosed()
	r.logger.Debug("Session closed", zap.String("user_id", userID))
	return true
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle for longer than the ttl and returns how many
// were closed.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if now.Sub(s.idleSince()) > r.ttl {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
		r.metrics.SessionClosed()
	}
	if len(expired) > 0 {
		r.logger.Info("Expired idle dashboard sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps idle sessions every interval until ctx is done, then closes
// every remaining session.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			return
		case <-ticker.C:
			r.Sweep(r.deps.now())
		}
	}
}

// CloseAll ends every session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, s := range sessions {
		s.Close()
		r.metrics.SessionClosed()
	}
}
