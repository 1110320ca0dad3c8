package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURBOOK_WEB/internal/dto"
)

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteErrorResponse(rec, http.StatusBadRequest, "Validation error", "status is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorResponse{Error: "Validation error", Message: "status is required"}, body)
}

func TestDecodeJSONRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ct       string
		wantErr  bool
		wantCode int
	}{
		{"ok", `{"status":"CONFIRMED"}`, "application/json", false, http.StatusOK},
		{"empty", ``, "application/json", true, http.StatusBadRequest},
		{"unknown field", `{"status":"x","extra":1}`, "application/json", true, http.StatusBadRequest},
		{"wrong type", `{"status":"x"}`, "text/plain", true, http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/x", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.ct)
			rec := httptest.NewRecorder()

			var dst dto.StatusUpdateRequest
			err := DecodeJSONRequest(rec, req, &dst)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, rec.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "CONFIRMED", dst.Status)
		})
	}
}

func TestAuthUserContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithAuthUser(context.Background(), AuthUser{ID: "u1", Role: "GUIDE"})
	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
}
