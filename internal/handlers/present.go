package handlers

import (
	"time"

	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/format"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/paging"
)

// presenter turns models into response items with display strings in the
// configured time zone.
type presenter struct {
	loc *time.Location
	now time.Time
}

func iso(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.UTC().Format(time.RFC3339)
}

func (p presenter) booking(b models.Booking) dto.BookingItem {
	item := dto.BookingItem{
		ID:           b.ID,
		ListingID:    b.Listing.ID,
		ListingTitle: b.ListingTitle(),
		City:         b.ListingCity(),
		UserID:       b.User.ID,
		GuideID:      b.GuideID(),
		Date:         iso(b.Date),
		DateLabel:    format.Date(iso(b.Date), p.loc),
		RelativeDay:  format.RelativeDay(b.Date.Time, p.now),
		GroupSize:    b.GroupSize,
		GroupLabel:   format.GroupSize(b.GroupSize),
		TotalPrice:   b.TotalPrice,
		PriceLabel:   format.Price(b.TotalPrice),
		Status:       string(b.Status),
		StatusLabel:  format.StatusLabel(b.Status),
		Reviewed:     b.Reviewed(),
		CreatedAt:    iso(b.CreatedAt),
		UpdatedAt:    iso(b.UpdatedAt),
	}
	if u, ok := b.User.Resolve(); ok {
		item.UserName = u.Name
	}
	return item
}

func (p presenter) listing(l models.Listing) dto.ListingItem {
	images := l.Images
	if images == nil {
		images = []string{}
	}
	return dto.ListingItem{
		ID:            l.ID,
		Title:         l.Title,
		Description:   format.SanitizeText(l.Description),
		City:          l.City,
		Category:      string(l.Category),
		Fee:           l.Fee,
		FeeLabel:      format.Price(l.Fee),
		Duration:      l.Duration,
		DurationLabel: format.Duration(l.Duration),
		MaxGroupSize:  l.MaxGroupSize,
		MeetingPoint:  l.MeetingPoint,
		Language:      l.Language,
		Itinerary:     format.SanitizeText(l.Itinerary),
		CoverImage:    l.CoverImage(),
		Images:        images,
		IsActive:      l.IsActive,
		GuideID:       l.Guide.ID,
		GuideName:     models.GuideName(l.Guide),
		CreatedAt:     iso(l.CreatedAt),
	}
}

func (p presenter) user(u models.User) dto.UserItem {
	return dto.UserItem{
		ID:          u.ID,
		Name:        u.Name,
		Initials:    format.Initials(u.Name),
		Email:       u.Email,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		IsVerified:  u.IsVerified,
		Languages:   u.Languages,
		Expertise:   u.Expertise,
		JoinedLabel: format.Date(iso(u.CreatedAt), p.loc),
	}
}

func (p presenter) wishlistEntry(selected map[string]bool) func(models.WishlistItem) dto.WishlistEntry {
	return func(w models.WishlistItem) dto.WishlistEntry {
		l, _ := w.Listing.Resolve()
		if l.ID == "" {
			l.ID = w.ListingID()
		}
		return dto.WishlistEntry{
			ID:         w.ID,
			ListingID:  w.ListingID(),
			Listing:    p.listing(l),
			AddedLabel: format.RelativeDay(w.Added().Time, p.now),
			Selected:   selected[w.ListingID()],
		}
	}
}

func presentAll[T any, I any](items []T, fn func(T) I) []I {
	out := make([]I, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

func pagination(page, size, totalPages int, r paging.Range) dto.Pagination {
	return dto.Pagination{
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		Total:      r.Total,
		Start:      r.Start,
		End:        r.End,
		HasPrev:    r.HasPrev,
		HasNext:    r.HasNext,
	}
}
