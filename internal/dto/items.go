package dto

// BookingItem is a booking row with display strings precomputed
type BookingItem struct {
	ID           string  `json:"id"`
	ListingID    string  `json:"listing_id"`
	ListingTitle string  `json:"listing_title"`
	City         string  `json:"city"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name,omitempty"`
	GuideID      string  `json:"guide_id,omitempty"`
	Date         string  `json:"date"`
	DateLabel    string  `json:"date_label"`
	RelativeDay  string  `json:"relative_day"`
	GroupSize    int     `json:"group_size"`
	GroupLabel   string  `json:"group_label"`
	TotalPrice   float64 `json:"total_price"`
	PriceLabel   string  `json:"price_label"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"status_label"`
	Reviewed     bool    `json:"reviewed"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ListingItem is a listing card
type ListingItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	City          string   `json:"city"`
	Category      string   `json:"category"`
	Fee           float64  `json:"fee"`
	FeeLabel      string   `json:"fee_label"`
	Duration      int      `json:"duration"`
	DurationLabel string   `json:"duration_label"`
	MaxGroupSize  int      `json:"max_group_size"`
	MeetingPoint  string   `json:"meeting_point,omitempty"`
	Language      string   `json:"language,omitempty"`
	Itinerary     string   `json:"itinerary,omitempty"`
	CoverImage    string   `json:"cover_image,omitempty"`
	Images        []string `json:"images"`
	IsActive      bool     `json:"is_active"`
	GuideID       string   `json:"guide_id"`
	GuideName     string   `json:"guide_name"`
	CreatedAt     string   `json:"created_at"`
}

// UserItem is an admin user row
type UserItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Initials    string   `json:"initials"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	IsActive    bool     `json:"is_active"`
	IsVerified  bool     `json:"is_verified"`
	Languages   []string `json:"languages,omitempty"`
	Expertise   []string `json:"expertise,omitempty"`
	JoinedLabel string   `json:"joined_label"`
}

// WishlistEntry is a saved listing
type WishlistEntry struct {
	ID         string      `json:"id"`
	ListingID  string      `json:"listing_id"`
	Listing    ListingItem `json:"listing"`
	AddedLabel string      `json:"added_label"`
	Selected   bool        `json:"selected"`
}
