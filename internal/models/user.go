package models

import "strings"

// Role is the account role as sent by the API.
type Role string

const (
	RoleTourist Role = "TOURIST"
	RoleGuide   Role = "GUIDE"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTourist, RoleGuide, RoleAdmin:
		return true
	}
	return false
}

// ParseRole normalizes user input ("guide", " Guide ") to a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

// User represents a marketplace account. Profile fields are only filled for guides.
type User struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       Role     `json:"role"`
	IsActive   bool     `json:"isActive"`
	IsVerified bool     `json:"isVerified"`
	Bio        string   `json:"bio,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Expertise  []string `json:"expertise,omitempty"`
	CreatedAt  Date     `json:"createdAt"`
	UpdatedAt  Date     `json:"updatedAt"`
}
