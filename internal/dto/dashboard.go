package dto

// Pagination info for one rendered page
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	Total      int  `json:"total"`
	Start      int  `json:"start"`
	End        int  `json:"end"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// DashboardResponse is the payload for every dashboard view. State is one of
// idle, loading, ready, error; Error is set only in the error state. Pending
// lists ids with an action in flight so the UI can disable their controls.
type DashboardResponse[T any, S any] struct {
	State      string     `json:"state"`
	Error      string     `json:"error,omitempty"`
	Items      []T        `json:"items"`
	Stats      S          `json:"stats"`
	Criteria   any        `json:"criteria"`
	Pagination Pagination `json:"pagination"`
	Pending    []string   `json:"pending"`
}

// CatalogResponse is the public listing grid. Error is set when the listings
// could not be fetched; Items is then empty.
type CatalogResponse struct {
	Error      string        `json:"error,omitempty"`
	Items      []ListingItem `json:"items"`
	Criteria   any           `json:"criteria"`
	Categories []string      `json:"categories"`
	Pagination Pagination    `json:"pagination"`
}

// StatusUpdateRequest changes a booking status
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// RoleUpdateRequest changes a user's role
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// WishlistAddRequest saves a listing to the wishlist
type WishlistAddRequest struct {
	ListingID string `json:"listingId"`
}

// CreateBookingRequest represents the payload to book a tour
type CreateBookingRequest struct {
	ListingID string `json:"listingId"`
	Date      string `json:"date"` // ISO 8601 format: YYYY-MM-DD or RFC3339
	GroupSize int    `json:"groupSize"`
}

// CreateBookingResponse envelope
type CreateBookingResponse struct {
	Booking BookingItem `json:"booking"`
}

// NotificationItem is one toast
type NotificationItem struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Board     string `json:"board"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// NotificationsResponse envelope
type NotificationsResponse struct {
	Notifications []NotificationItem `json:"notifications"`
}
