package dashboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"TOURBOOK_WEB/internal/filter"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/sorting"
	"TOURBOOK_WEB/internal/stats"
)

// WishlistQuery is the criteria of the wishlist board.
type WishlistQuery struct {
	filter.WishlistCriteria
	Sort sorting.Order `json:"sort"`
}

// WishlistView is one rendered page of the wishlist.
type WishlistView = View[models.WishlistItem, WishlistQuery]

// TouristWishlist holds saved listings keyed by listing id, plus a
// selection used for bulk removal.
type TouristWishlist struct {
	*Board[models.WishlistItem, WishlistQuery]
	api API

	selMu    sync.Mutex
	selected map[string]bool
}

func newTouristWishlist(deps Deps) *TouristWishlist {
	d := &TouristWishlist{api: deps.API, selected: make(map[string]bool)}
	d.Board = newBoard(BoardTouristWishlist, deps,
		WishlistQuery{WishlistCriteria: filter.WishlistCriteria{Category: filter.All}, Sort: sorting.Recent},
		deps.API.Wishlist, wishlistID,
		func(items []models.WishlistItem, q WishlistQuery, _ time.Time) []models.WishlistItem {
			return sorting.Wishlist(filter.Wishlist(items, q.WishlistCriteria), q.Sort)
		})
	return d
}

// Load refetches and drops selections for items that disappeared.
func (d *TouristWishlist) Load(ctx context.Context) error {
	err := d.Board.Load(ctx)
	d.pruneSelection()
	return err
}

// EnsureLoaded loads the wishlist the first time it is shown.
func (d *TouristWishlist) EnsureLoaded(ctx context.Context) error {
	if st, _ := d.State(); st != StateIdle {
		return nil
	}
	return d.Load(ctx)
}

// Stats summarizes every saved item and the current selection.
func (d *TouristWishlist) Stats() stats.WishlistStats {
	return stats.Wishlist(d.Items(), d.selection())
}

// Add saves a listing. When the API does not echo the new item back the
// wishlist is refetched instead.
func (d *TouristWishlist) Add(ctx context.Context, listingID string) error {
	var added models.WishlistItem
	err := d.mutate(ctx, mutation[models.WishlistItem]{
		id:     listingID,
		action: "add",
		call: func(ctx context.Context) error {
			var err error
			added, err = d.api.AddToWishlist(ctx, listingID)
			return err
		},
		patch: func(items []models.WishlistItem, now time.Time) []models.WishlistItem {
			if added.ListingID() == "" {
				return items
			}
			if added.AddedAt.IsZero() && added.CreatedAt.IsZero() {
				added.AddedAt = models.NewDate(now)
			}
			items = removeByID(wishlistID, added.ListingID())(items, now)
			return prepend(added)(items, now)
		},
		success: "Added to wishlist",
	})
	if err == nil && added.ListingID() == "" {
		return d.Load(ctx)
	}
	return err
}

// Remove drops a saved listing.
func (d *TouristWishlist) Remove(ctx context.Context, listingID string) error {
	err := d.mutate(ctx, mutation[models.WishlistItem]{
		id:        listingID,
		action:    "remove",
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.RemoveFromWishlist(ctx, listingID) },
		patch:     removeByID(wishlistID, listingID),
		success:   "Removed from wishlist",
	})
	if err == nil {
		d.selMu.Lock()
		delete(d.selected, listingID)
		d.selMu.Unlock()
	}
	return err
}

// ToggleSelected flips the selection of a saved listing. Unknown ids are
// ignored and reported as unselected.
func (d *TouristWishlist) ToggleSelected(listingID string) bool {
	if !d.holds(listingID) {
		return false
	}
	d.selMu.Lock()
	defer d.selMu.Unlock()
	if d.selected[listingID] {
		delete(d.selected, listingID)
		return false
	}
	d.selected[listingID] = true
	return true
}

// SelectAll selects every item matching the current criteria.
func (d *TouristWishlist) SelectAll(now time.Time) {
	v := d.View(now)
	all := d.derive(v.Base, v.Criteria, now)
	d.selMu.Lock()
	defer d.selMu.Unlock()
	for _, it := range all {
		d.selected[it.ListingID()] = true
	}
}

// ClearSelection unselects everything.
func (d *TouristWishlist) ClearSelection() {
	d.selMu.Lock()
	d.selected = make(map[string]bool)
	d.selMu.Unlock()
}

// Selected returns the selected listing ids in order.
func (d *TouristWishlist) Selected() []string {
	sel := d.selection()
	ids := make([]string, 0, len(sel))
	for id := range sel {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RemoveSelected removes every selected item one at a time. Failures do not
// stop the rest; they are joined into the returned error and stay selected.
func (d *TouristWishlist) RemoveSelected(ctx context.Context) (removed int, err error) {
	var errs []error
	for _, id := range d.Selected() {
		if rErr := d.Remove(ctx, id); rErr != nil {
			errs = append(errs, rErr)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

func (d *TouristWishlist) selection() map[string]bool {
	d.selMu.Lock()
	defer d.selMu.Unlock()
	out := make(map[string]bool, len(d.selected))
	for id, ok := range d.selected {
		if ok {
			out[id] = true
		}
	}
	return out
}

func (d *TouristWishlist) holds(listingID string) bool {
	for _, it := range d.Items() {
		if it.ListingID() == listingID {
			return true
		}
	}
	return false
}

func (d *TouristWishlist) pruneSelection() {
	keep := make(map[string]bool)
	for _, it := range d.Items() {
		keep[it.ListingID()] = true
	}
	d.selMu.Lock()
	for id := range d.selected {
		if !keep[id] {
			delete(d.selected, id)
		}
	}
	d.selMu.Unlock()
}
