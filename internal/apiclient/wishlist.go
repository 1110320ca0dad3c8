package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"TOURBOOK_WEB/internal/models"
)

// Wishlist fetches the signed-in tourist's saved listings.
func (c *Client) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/wishlist",
		endpoint: "wishlist.list",
		fallback: "Failed to fetch wishlist",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.WishlistItem](c, "wishlist.list", data), nil
}

// AddToWishlist saves a listing. The returned item is zero when the API
// does not echo it back.
func (c *Client) AddToWishlist(ctx context.Context, listingID string) (models.WishlistItem, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/wishlist",
		endpoint: "wishlist.add",
		body:     map[string]string{"listingId": listingID},
		fallback: "Failed to add to wishlist",
	})
	if err != nil {
		return models.WishlistItem{}, err
	}
	return decodeOne[models.WishlistItem](c, "wishlist.add", data), nil
}

// RemoveFromWishlist drops a saved listing by listing id.
func (c *Client) RemoveFromWishlist(ctx context.Context, listingID string) error {
	_, err := c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/wishlist/" + url.PathEscape(listingID),
		endpoint: "wishlist.remove",
		fallback: "Failed to remove from wishlist",
	})
	return err
}
