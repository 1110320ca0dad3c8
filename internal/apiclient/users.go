package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"TOURBOOK_WEB/internal/models"
)

// ListUsers fetches every account. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	data, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/users",
		endpoint: "users.list",
		fallback: "Failed to fetch users",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](c, "users.list", data), nil
}

// ToggleUserActive flips an account's active flag.
func (c *Client) ToggleUserActive(ctx context.Context, id string) error {
	_, err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/users/" + url.PathEscape(id) + "/toggle-active",
		endpoint: "users.toggle",
		fallback: "Failed to update user status",
	})
	return err
}

// ChangeUserRole assigns role to an account.
func (c *Client) ChangeUserRole(ctx context.Context, id string, role models.Role) error {
	_, err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/users/" + url.PathEscape(id) + "/role",
		endpoint: "users.role",
		body:     map[string]models.Role{"role": role},
		fallback: "Failed to update user role",
	})
	return err
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/users/" + url.PathEscape(id),
		endpoint: "users.delete",
		fallback: "Failed to delete user",
	})
	return err
}
