package filter

import "TOURBOOK_WEB/internal/models"

// UserCriteria filters the admin user list. Role and active state are
// independent predicates.
type UserCriteria struct {
	Search string      `json:"search"`
	Role   models.Role `json:"role"`
	Active ActiveState `json:"active"`
}

// Match reports whether u satisfies every active predicate in c.
func (c UserCriteria) Match(u models.User) bool {
	return MatchesText(c.Search, u.Name, u.Email) &&
		Equals(c.Role, u.Role) &&
		c.Active.matches(u.IsActive)
}

// Users returns the users matching c.
func Users(items []models.User, c UserCriteria) []models.User {
	return Apply(items, c.Match)
}
