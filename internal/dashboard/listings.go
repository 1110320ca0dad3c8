package dashboard

import (
	"context"
	"time"

	"TOURBOOK_WEB/internal/filter"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/sorting"
	"TOURBOOK_WEB/internal/stats"
)

// ListingQuery is the criteria of a listing board.
type ListingQuery struct {
	filter.ListingCriteria
	Sort sorting.Order `json:"sort"`
}

// DefaultListingQuery shows every listing, newest first.
func DefaultListingQuery() ListingQuery {
	return ListingQuery{
		ListingCriteria: filter.ListingCriteria{Category: filter.All, Active: filter.ActiveAny},
		Sort:            sorting.Newest,
	}
}

// DeriveListings filters then sorts listings by q.
func DeriveListings(items []models.Listing, q ListingQuery) []models.Listing {
	return sorting.Listings(filter.Listings(items, q.ListingCriteria), q.Sort)
}

// ListingBoard is a board over listings.
type ListingBoard = Board[models.Listing, ListingQuery]

// ListingView is one rendered page of a listing board.
type ListingView = View[models.Listing, ListingQuery]

// Listings backs both the admin listing table and the guide's own listings;
// only the fetch differs.
type Listings struct {
	*ListingBoard
	api API
}

func newListings(name string, deps Deps, fetch func(context.Context) ([]models.Listing, error)) *Listings {
	d := &Listings{api: deps.API}
	d.ListingBoard = newBoard(name, deps, DefaultListingQuery(), fetch, listingID,
		func(items []models.Listing, q ListingQuery, _ time.Time) []models.Listing {
			return DeriveListings(items, q)
		})
	return d
}

func newAdminListings(deps Deps) *Listings {
	return newListings(BoardAdminListings, deps, deps.API.AllListings)
}

func newGuideListings(deps Deps) *Listings {
	return newListings(BoardGuideListings, deps, deps.API.MyListings)
}

// Stats summarizes the whole collection.
func (d *Listings) Stats() stats.ListingStats {
	return stats.Listings(d.Items())
}

// ToggleActive publishes or hides a listing.
func (d *Listings) ToggleActive(ctx context.Context, id string) error {
	return d.mutate(ctx, mutation[models.Listing]{
		id:        id,
		action:    "toggle-active",
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.ToggleListingActive(ctx, id) },
		patch:     patchListingActive(id),
		success:   "Listing status updated",
	})
}

// Delete removes a listing.
func (d *Listings) Delete(ctx context.Context, id string) error {
	return d.mutate(ctx, mutation[models.Listing]{
		id:        id,
		action:    "delete",
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.DeleteListing(ctx, id) },
		patch:     removeByID(listingID, id),
		success:   "Listing deleted",
	})
}
