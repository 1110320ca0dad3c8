package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"TOURBOOK_WEB/internal/models"
)

// ListListings fetches the public catalog.
func (c *Client) ListListings(ctx context.Context) ([]models.Listing, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/listings",
		endpoint: "listings.list",
		fallback: "Failed to fetch listings",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Listing](c, "listings.list", data), nil
}

// MyListings fetches the signed-in guide's listings.
func (c *Client) MyListings(ctx context.Context) ([]models.Listing, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/listings/my-listings",
		endpoint: "listings.mine",
		fallback: "Failed to fetch your listings",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Listing](c, "listings.mine", data), nil
}

// AllListings fetches every listing, active or not. Admin only.
func (c *Client) AllListings(ctx context.Context) ([]models.Listing, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/listings/admin/all",
		endpoint: "listings.admin",
		fallback: "Failed to fetch listings",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Listing](c, "listings.admin", data), nil
}

// ToggleListingActive flips a listing's active flag.
func (c *Client) ToggleListingActive(ctx context.Context, id string) error {
	_, err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/listings/" + url.PathEscape(id) + "/toggle-active",
		endpoint: "listings.toggle",
		fallback: "Failed to update listing",
	})
	return err
}

// DeleteListing removes a listing.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	_, err := c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/listings/" + url.PathEscape(id),
		endpoint: "listings.delete",
		fallback: "Failed to delete listing",
	})
	return err
}

// GetListing fetches one listing. A missing listing is an *APIError with
// StatusCode 404.
func (c *Client) GetListing(ctx context.Context, id string) (models.Listing, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/listings/" + url.PathEscape(id),
		endpoint: "listings.get",
		fallback: "Failed to fetch listing",
	})
	if err != nil {
		return models.Listing{}, err
	}
	return decodeOne[models.Listing](c, "listings.get", data), nil
}
