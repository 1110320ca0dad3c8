package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"TOURBOOK_WEB/internal/config"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/utils"
)

// JWTClaims represents the claims in tokens issued by the auth service
type JWTClaims struct {
	UserID string      `json:"id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token the way the auth service does. Used by tests
// and local tooling; production tokens come from the auth service.
func GenerateToken(userID, email string, role models.Role, ttl time.Duration, cfg *config.AuthConfig) (string, error) {
	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, cfg *config.AuthConfig) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// tokenFromRequest reads the auth cookie, falling back to a Bearer header
func tokenFromRequest(r *http.Request, cookieName string) (string, bool) {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", false
	}
	return tokenParts[1], true
}

// AuthMiddleware requires a valid token in the auth cookie or the
// Authorization header and stores the user on the request context
func AuthMiddleware(cfg *config.AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := tokenFromRequest(r, cfg.CookieName)
			if !ok {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
				return
			}

			claims, err := ValidateToken(tokenString, cfg)
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
				return
			}

			ctx := utils.WithAuthUser(r.Context(), utils.AuthUser{
				ID:    claims.UserID,
				Email: claims.Email,
				Role:  string(claims.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects users whose role is not one of roles. It must run
// after AuthMiddleware.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := utils.GetAuthUserFromContext(r.Context())
			if !ok {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
				return
			}
			for _, role := range roles {
				if strings.EqualFold(u.Role, string(role)) {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "You do not have access to this dashboard")
		})
	}
}
