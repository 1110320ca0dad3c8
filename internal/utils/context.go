package utils

import "context"

type ctxKey string

const authUserKey ctxKey = "auth_user"

// AuthUser is the signed-in user as read from the auth token.
type AuthUser struct {
	ID    string
	Email string
	Role  string
}

// WithAuthUser stores u on ctx.
func WithAuthUser(ctx context.Context, u AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, u)
}

// GetAuthUserFromContext returns the user stored by the auth middleware.
func GetAuthUserFromContext(ctx context.Context) (AuthUser, bool) {
	u, ok := ctx.Value(authUserKey).(AuthUser)
	return u, ok && u.ID != ""
}

// GetUserIDFromContext returns the signed-in user's id.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	u, ok := GetAuthUserFromContext(ctx)
	return u.ID, ok
}
