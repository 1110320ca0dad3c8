package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/config"
	"TOURBOOK_WEB/internal/handlers"
	"TOURBOOK_WEB/internal/metrics"
	"TOURBOOK_WEB/internal/middleware"
	"TOURBOOK_WEB/internal/models"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Health    *handlers.HealthHandler
	Catalog   *handlers.CatalogHandler
	Bookings  *handlers.BookingHandler
	Dashboard *handlers.DashboardHandler
	Session   *handlers.SessionHandler
}

// SetupRoutes configures all application routes. m may be nil to leave
// /metrics unmounted.
func SetupRoutes(h Handlers, auth *config.AuthConfig, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)

	// Health check routes
	r.Get("/healthz", h.Health.HealthCheck)
	r.Get("/livez", h.Health.LivenessCheck)
	r.Get("/readyz", h.Health.ReadinessCheck)

	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Public catalog
	r.Get("/api/listings", h.Catalog.ListListings)

	r.Group(func(authRouter chi.Router) {
		authRouter.Use(middleware.AuthMiddleware(auth))

		authRouter.Get("/api/notifications", h.Session.Notifications)
		authRouter.Delete("/api/session", h.Session.EndSession)

		authRouter.Route("/api/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireRole(models.RoleAdmin))

			admin.Get("/bookings", h.Dashboard.AdminBookings)
			admin.Post("/bookings/refresh", h.Dashboard.RefreshAdminBookings)
			admin.Patch("/bookings/{id}/status", h.Dashboard.UpdateAdminBookingStatus)

			admin.Get("/users", h.Dashboard.AdminUsers)
			admin.Post("/users/refresh", h.Dashboard.RefreshAdminUsers)
			admin.Patch("/users/{id}/toggle-active", h.Dashboard.ToggleUserActive)
			admin.Patch("/users/{id}/role", h.Dashboard.ChangeUserRole)
			admin.Delete("/users/{id}", h.Dashboard.DeleteUser)

			admin.Get("/listings", h.Dashboard.AdminListings)
			admin.Post("/listings/refresh", h.Dashboard.RefreshAdminListings)
			admin.Patch("/listings/{id}/toggle-active", h.Dashboard.ToggleAdminListing)
			admin.Delete("/listings/{id}", h.Dashboard.DeleteAdminListing)
		})

		authRouter.Route("/api/guide", func(guide chi.Router) {
			guide.Use(middleware.RequireRole(models.RoleGuide))

			guide.Get("/listings", h.Dashboard.GuideListings)
			guide.Post("/listings/refresh", h.Dashboard.RefreshGuideListings)
			guide.Patch("/listings/{id}/toggle-active", h.Dashboard.ToggleGuideListing)
			guide.Delete("/listings/{id}", h.Dashboard.DeleteGuideListing)

			guide.Get("/requests", h.Dashboard.GuideRequests)
			guide.Post("/requests/refresh", h.Dashboard.RefreshGuideRequests)
			guide.Post("/requests/{id}/approve", h.Dashboard.ApproveRequest)
			guide.Post("/requests/{id}/reject", h.Dashboard.RejectRequest)

			guide.Get("/upcoming", h.Dashboard.GuideUpcoming)
			guide.Post("/upcoming/refresh", h.Dashboard.RefreshGuideUpcoming)
			guide.Post("/upcoming/{id}/complete", h.Dashboard.CompleteTour)
			guide.Post("/upcoming/{id}/cancel", h.Dashboard.CancelTour)
		})

		authRouter.Group(func(tourist chi.Router) {
			tourist.Use(middleware.RequireRole(models.RoleTourist))

			tourist.Post("/api/bookings", h.Bookings.CreateBooking)

			tourist.Route("/api/tourist", func(tr chi.Router) {
				tr.Get("/trips", h.Dashboard.TouristTrips)
				tr.Post("/trips/refresh", h.Dashboard.RefreshTouristTrips)
				tr.Post("/trips/{id}/cancel", h.Dashboard.CancelTrip)

				tr.Get("/wishlist", h.Dashboard.TouristWishlist)
				tr.Post("/wishlist", h.Dashboard.AddToWishlist)
				tr.Post("/wishlist/refresh", h.Dashboard.RefreshTouristWishlist)
				tr.Post("/wishlist/select-all", h.Dashboard.SelectAllWishlist)
				tr.Delete("/wishlist/selection", h.Dashboard.ClearWishlistSelection)
				tr.Post("/wishlist/remove-selected", h.Dashboard.RemoveSelectedWishlist)
				tr.Post("/wishlist/{listingId}/select", h.Dashboard.ToggleWishlistSelection)
				tr.Delete("/wishlist/{listingId}", h.Dashboard.RemoveFromWishlist)
			})
		})
	})

	// Root route
	r.Get("/", rootHandler)

	return r
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Tourbook web backend is running."))
}
