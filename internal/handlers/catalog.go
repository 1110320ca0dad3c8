package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/apiclient"
	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/filter"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/paging"
	"TOURBOOK_WEB/internal/utils"
)

// ListingSource lists the public catalog.
type ListingSource interface {
	ListListings(ctx context.Context) ([]models.Listing, error)
}

// CatalogHandler serves the public listing grid. It keeps no state; every
// request fetches the catalog.
type CatalogHandler struct {
	api      ListingSource
	pageSize int
	loc      *time.Location
	clock    func() time.Time
	logger   *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler. clock may be nil.
func NewCatalogHandler(api ListingSource, pageSize int, loc *time.Location, clock func() time.Time, logger *zap.Logger) *CatalogHandler {
	if pageSize <= 0 {
		pageSize = paging.CatalogPageSize
	}
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &CatalogHandler{api: api, pageSize: pageSize, loc: loc, clock: clock, logger: logger.Named("CatalogHandler")}
}

// ListListings handles GET /api/listings
// @Summary Browse active listings
// @Tags listings
// @Produce json
// @Param search query string false "Title, description, city, category or guide"
// @Param category query string false "Category or all"
// @Param sort query string false "newest, price-low, price-high, duration, title-asc, title-desc"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.CatalogResponse
// @Router /api/listings [get]
func (h *CatalogHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	q := listingQuery(r.URL.Query(), dashboard.DefaultListingQuery())
	q.Active = filter.ActiveOnly
	page := paging.ParsePage(r)

	resp := dto.CatalogResponse{Criteria: q, Categories: categoryNames()}

	listings, err := h.api.ListListings(apiclient.FromRequest(r))
	if err != nil {
		h.logger.Warn("Failed to fetch catalog", zap.Error(err))
		resp.Error = err.Error()
		listings = nil
	}

	matched := dashboard.DeriveListings(listings, q)
	shown := paging.Paginate(matched, page, h.pageSize)
	p := presenter{loc: h.loc, now: h.clock().In(h.loc)}
	resp.Items = presentAll(shown, p.listing)
	resp.Pagination = pagination(page, h.pageSize, paging.TotalPages(len(matched), h.pageSize),
		paging.ComputeRange(page, h.pageSize, len(shown), len(matched)))

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

func categoryNames() []string {
	out := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		out = append(out, string(c))
	}
	return out
}
