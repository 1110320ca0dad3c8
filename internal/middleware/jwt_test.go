package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/config"
	"TOURBOOK_WEB/internal/models"
	"TOURBOOK_WEB/internal/utils"
)

var testAuth = &config.AuthConfig{JWTSecret: "test-secret", CookieName: "token"}

func echoUser(w http.ResponseWriter, r *http.Request) {
	u, _ := utils.GetAuthUserFromContext(r.Context())
	w.Write([]byte(u.ID + ":" + u.Role))
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := GenerateToken("u1", "a@b.c", models.RoleGuide, time.Hour, testAuth)
	require.NoError(t, err)
	expired, err := GenerateToken("u1", "a@b.c", models.RoleGuide, -time.Hour, testAuth)
	require.NoError(t, err)
	foreign, err := GenerateToken("u1", "a@b.c", models.RoleGuide, time.Hour, &config.AuthConfig{JWTSecret: "other"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		wantCode int
		wantBody string
	}{
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: valid}) }, http.StatusOK, "u1:GUIDE"},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) }, http.StatusOK, "u1:GUIDE"},
		{"missing", func(r *http.Request) {}, http.StatusUnauthorized, ""},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "Token "+valid) }, http.StatusUnauthorized, ""},
		{"expired", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) }, http.StatusUnauthorized, ""},
		{"wrong secret", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+foreign) }, http.StatusUnauthorized, ""},
	}
	h := AuthMiddleware(testAuth)(http.HandlerFunc(echoUser))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/guide/listings", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	h := RequireRole(models.RoleAdmin)(http.HandlerFunc(echoUser))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(utils.WithAuthUser(req.Context(), utils.AuthUser{ID: "u1", Role: "TOURIST"})))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(utils.WithAuthUser(req.Context(), utils.AuthUser{ID: "u2", Role: "ADMIN"})))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	h := RequestLogger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
