package dashboard

import (
	"context"
	"time"

	"TOURBOOK_WEB/internal/filter"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/sorting"
	"TOURBOOK_WEB/internal/stats"
)

// UserView is one rendered page of the admin user table.
type UserView = View[models.User, filter.UserCriteria]

// AdminUsers is the admin user table, sorted by name.
type AdminUsers struct {
	*Board[models.User, filter.UserCriteria]
	api API
}

func newAdminUsers(deps Deps) *AdminUsers {
	d := &AdminUsers{api: deps.API}
	d.Board = newBoard(BoardAdminUsers, deps,
		filter.UserCriteria{Role: filter.All, Active: filter.ActiveAny},
		deps.API.ListUsers, userID,
		func(items []models.User, c filter.UserCriteria, _ time.Time) []models.User {
			return sorting.UsersByName(filter.Users(items, c))
		})
	return d
}

// Stats summarizes every account.
func (d *AdminUsers) Stats() stats.RoleStats {
	return stats.Roles(d.Items())
}

// ToggleActive suspends or reactivates an account.
func (d *AdminUsers) ToggleActive(ctx context.Context, id string) error {
	return d.mutate(ctx, mutation[models.User]{
		id:        id,
		action:    "toggle-active",
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.ToggleUserActive(ctx, id) },
		patch:     patchUserActive(id),
		success:   "User status updated",
	})
}

// ChangeRole assigns a new role. Active state is untouched.
func (d *AdminUsers) ChangeRole(ctx context.Context, id string, role models.Role) error {
	return d.mutate(ctx, mutation[models.User]{
		id:        id,
		action:    "change-role",
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.ChangeUserRole(ctx, id, role) },
		patch:     patchUserRole(id, role),
		success:   "User role updated",
	})
}

// Delete removes an account.
func (d *AdminUsers) Delete(ctx context.Context, id string) error {
	return d.mutate(ctx, mutation[models.User]{
		id:        id,
		action:    "delete",
		mustExist: true,
		call:      func(ctx context.Context) error { return d.api.DeleteUser(ctx, id) },
		patch:     removeByID(userID, id),
		success:   "User deleted",
	})
}
