package middleware_test

import (
	"hotel/config"
	"hotel/infras/jwt"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiKey = "internal-key"

func newRouter(t *testing.T, key string) (http.Handler, jwt.JWT) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = key
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.AccessExpireMin = 15

	tokens := jwt.New(cfg)
	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/hotels/{id}", Method: http.MethodGet, Skip: true},
			{Path: "/v1/hotels/{id}/disable", Method: http.MethodPost, Permissions: []string{constant.RoleAdmin, constant.RoleHotelManager}},
		},
	}

	auth := middleware.NewAuthRoleMiddleware(tokens, otelMocks.NewOtel(), perms, cfg)

	echo := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(userID))
	}

	router := chi.NewRouter()
	router.Use(auth.APIKey, auth.Auth, auth.RBAC)
	router.Route("/v1", func(r chi.Router) {
		r.Get("/hotels/{id}", echo)
		r.Post("/hotels/{id}/disable", echo)
	})

	return router, tokens
}

func TestAuthRole(t *testing.T) {
	router, tokens := newRouter(t, apiKey)

	manager, err := tokens.Issue("manager-1", "manager@example.com", constant.RoleHotelManager, jwt.AccessToken)
	require.NoError(t, err)

	customer, err := tokens.Issue("guest-1", "guest@example.com", constant.RoleCustomer, jwt.AccessToken)
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{
			name:     "public route without token",
			method:   http.MethodGet,
			path:     "/v1/hotels/h-1",
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token",
			method:   http.MethodPost,
			path:     "/v1/hotels/h-1/disable",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			method:   http.MethodPost,
			path:     "/v1/hotels/h-1/disable",
			headers:  map[string]string{constant.RequestHeaderAuthorization: manager},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "role not allowed",
			method:   http.MethodPost,
			path:     "/v1/hotels/h-1/disable",
			headers:  map[string]string{constant.RequestHeaderAuthorization: "Bearer " + customer},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "manager allowed",
			method:   http.MethodPost,
			path:     "/v1/hotels/h-1/disable",
			headers:  map[string]string{constant.RequestHeaderAuthorization: "Bearer " + manager},
			wantCode: http.StatusOK,
			wantBody: "manager-1",
		},
		{
			name:     "api key skips token",
			method:   http.MethodPost,
			path:     "/v1/hotels/h-1/disable",
			headers:  map[string]string{constant.RequestHeaderAPIKey: apiKey},
			wantCode: http.StatusOK,
			wantBody: constant.ActorInternal,
		},
		{
			name:     "wrong api key",
			method:   http.MethodPost,
			path:     "/v1/hotels/h-1/disable",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "nope"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAPIKey_NotConfigured(t *testing.T) {
	router, _ := newRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/hotels/h-1/disable", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "anything")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
