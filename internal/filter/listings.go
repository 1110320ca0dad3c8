package filter

import "TOURBOOK_WEB/internal/models"

// ListingCriteria filters listing lists (catalog, guide and admin listings).
type ListingCriteria struct {
	Search   string          `json:"search"`
	Category models.Category `json:"category"`
	Active   ActiveState     `json:"active"`
	GuideID  string          `json:"guideId,omitempty"`
}

// Match reports whether l satisfies every active predicate in c.
func (c ListingCriteria) Match(l models.Listing) bool {
	if !MatchesText(c.Search, l.Title, l.Description, l.City, string(l.Category), models.GuideName(l.Guide)) {
		return false
	}
	if !Equals(c.Category, l.Category) {
		return false
	}
	if !c.Active.matches(l.IsActive) {
		return false
	}
	if Constrains(c.GuideID) && l.Guide.ID != c.GuideID {
		return false
	}
	return true
}

// Listings returns the listings matching c.
func Listings(items []models.Listing, c ListingCriteria) []models.Listing {
	return Apply(items, c.Match)
}
