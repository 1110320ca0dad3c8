package models

import "strings"

// Category is the fixed set of tour categories.
type Category string

const (
	CategoryFood        Category = "FOOD"
	CategoryHistory     Category = "HISTORY"
	CategoryArt         Category = "ART"
	CategoryNature      Category = "NATURE"
	CategoryAdventure   Category = "ADVENTURE"
	CategoryNightlife   Category = "NIGHTLIFE"
	CategoryShopping    Category = "SHOPPING"
	CategoryPhotography Category = "PHOTOGRAPHY"
	CategoryCulture     Category = "CULTURE"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood, CategoryHistory, CategoryArt, CategoryNature, CategoryAdventure,
	CategoryNightlife, CategoryShopping, CategoryPhotography, CategoryCulture,
}

// ParseCategory normalizes user input to a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return c, false
}

// Listing is a bookable tour offered by a guide.
type Listing struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	City         string   `json:"city"`
	Category     Category `json:"category"`
	Fee          float64  `json:"fee"`
	Duration     int      `json:"duration"` // hours
	MaxGroupSize int      `json:"maxGroupSize"`
	MeetingPoint string   `json:"meetingPoint"`
	Language     string   `json:"language"`
	Itinerary    string   `json:"itinerary"`
	Images       []string `json:"images"`
	IsActive     bool     `json:"isActive"`
	Guide        GuideRef `json:"guide"`
	CreatedAt    Date     `json:"createdAt"`
	UpdatedAt    Date     `json:"updatedAt"`
}

// CoverImage returns the first image URL, or "".
func (l Listing) CoverImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}
