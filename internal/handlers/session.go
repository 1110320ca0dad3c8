package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/utils"
)

// SessionHandler exposes the session's notification feed and lets the UI
// end the session on logout
type SessionHandler struct {
	registry *dashboard.Registry
	logger   *zap.Logger
}

// NewSessionHandler creates a SessionHandler
func NewSessionHandler(registry *dashboard.Registry, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{registry: registry, logger: logger.Named("SessionHandler")}
}

// Notifications handles GET /api/notifications
// @Summary Drain pending toasts
// @Tags session
// @Produce json
// @Success 200 {object} dto.NotificationsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/notifications [get]
func (h *SessionHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	resp := dto.NotificationsResponse{Notifications: []dto.NotificationItem{}}
	if s, ok := h.registry.Lookup(userID); ok {
		for _, n := range s.Feed.Drain() {
			resp.Notifications = append(resp.Notifications, dto.NotificationItem{
				ID:        n.ID.String(),
				Kind:      string(n.Kind),
				Board:     n.Board,
				Message:   n.Message,
				CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// EndSession handles DELETE /api/session
// @Summary Close every dashboard of the signed-in user
// @Tags session
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/session [delete]
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}
	if h.registry.Close(userID) {
		h.logger.Info("Session ended", zap.String("user_id", userID))
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Session closed"})
}
