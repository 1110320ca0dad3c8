package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/apiclient"
	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/utils"
)

// DashboardHandler serves the role dashboards out of per-user sessions
type DashboardHandler struct {
	registry *dashboard.Registry
	loc      *time.Location
	clock    func() time.Time
	logger   *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler. clock may be nil.
func NewDashboardHandler(registry *dashboard.Registry, loc *time.Location, clock func() time.Time, logger *zap.Logger) *DashboardHandler {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{registry: registry, loc: loc, clock: clock, logger: logger.Named("DashboardHandler")}
}

func (h *DashboardHandler) presenter() presenter {
	return presenter{loc: h.loc, now: h.clock().In(h.loc)}
}

// loader is implemented by every dashboard.
type loader interface {
	Load(ctx context.Context) error
	EnsureLoaded(ctx context.Context) error
}

// boardSpec binds a dashboard to its query parser and response shape.
type boardSpec[D loader] struct {
	get    func(*dashboard.Session) D
	query  func(d D, r *http.Request, u utils.AuthUser)
	render func(p presenter, d D) any
}

func (h *DashboardHandler) session(w http.ResponseWriter, r *http.Request) (*dashboard.Session, utils.AuthUser, bool) {
	u, ok := utils.GetAuthUserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return nil, u, false
	}
	return h.registry.Session(u.ID), u, true
}

// load fetches the board on first view or on refresh. Read failures are
// rendered in the view, except a rejected session which is reported as 401.
func (h *DashboardHandler) load(w http.ResponseWriter, r *http.Request, d loader, refresh bool) bool {
	ctx := apiclient.FromRequest(r)
	var err error
	if refresh {
		err = d.Load(ctx)
	} else {
		err = d.EnsureLoaded(ctx)
	}
	switch {
	case err == nil:
		return true
	case errors.Is(err, apiclient.ErrUnauthorized):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", err.Error())
		return false
	case errors.Is(err, dashboard.ErrClosed):
		writeActionError(w, err)
		return false
	}
	h.logger.Warn("Dashboard load failed", zap.String("path", r.URL.Path), zap.Error(err))
	return true
}

func serveView[D loader](h *DashboardHandler, w http.ResponseWriter, r *http.Request, spec boardSpec[D], refresh bool) {
	s, u, ok := h.session(w, r)
	if !ok {
		return
	}
	d := spec.get(s)
	if !h.load(w, r, d, refresh) {
		return
	}
	spec.query(d, r, u)
	utils.WriteJSONResponse(w, http.StatusOK, spec.render(h.presenter(), d))
}

func serveAction[D loader](h *DashboardHandler, w http.ResponseWriter, r *http.Request, spec boardSpec[D], act func(ctx context.Context, d D) error) {
	s, _, ok := h.session(w, r)
	if !ok {
		return
	}
	d := spec.get(s)
	if !h.load(w, r, d, false) {
		return
	}
	if err := act(apiclient.FromRequest(r), d); err != nil {
		h.logger.Info("Dashboard action rejected", zap.String("path", r.URL.Path), zap.Error(err))
		writeActionError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, spec.render(h.presenter(), d))
}

// writeActionError maps a failed action to a response. Upstream failures
// keep the API's status and message.
func writeActionError(w http.ResponseWriter, err error) {
	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, dashboard.ErrActionInFlight):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "Another action is still in progress for this item")
	case errors.Is(err, dashboard.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Item not found on this dashboard")
	case errors.Is(err, dashboard.ErrClosed):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "Session ended, reload the dashboard")
	case errors.Is(err, errNothingSelected):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Select at least one item first")
	case errors.As(err, &apiErr):
		utils.WriteErrorResponse(w, apiErr.HTTPStatus(), "Request failed", apiErr.Message)
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

func dashboardResponse[T any, C any, I any, S any](v dashboard.View[T, C], items []I, stats S) dto.DashboardResponse[I, S] {
	pending := v.InFlight
	if pending == nil {
		pending = []string{}
	}
	return dto.DashboardResponse[I, S]{
		State:      string(v.State),
		Error:      v.Error,
		Items:      items,
		Stats:      stats,
		Criteria:   v.Criteria,
		Pagination: pagination(v.Page, v.PageSize, v.TotalPages, v.Range),
		Pending:    pending,
	}
}
