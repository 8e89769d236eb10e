package middleware_test

import (
	"errors"
	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		count         int64
		err           error
		wantCode      int
		wantRemaining string
	}{
		{name: "first request", count: 1, wantCode: http.StatusOK, wantRemaining: "4"},
		{name: "last allowed", count: 5, wantCode: http.StatusOK, wantRemaining: "0"},
		{name: "over the limit", count: 6, wantCode: http.StatusTooManyRequests, wantRemaining: "0"},
		{name: "cache down", err: errors.New("connection refused"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = true
			cfg.App.RateLimiter.MaxRequests = 5
			cfg.App.RateLimiter.WindowSeconds = 60

			redisCache.EXPECT().
				Incr(gomock.Any(), "limiter:10.0.0.7:booking-app", 60).
				Return(tt.count, tt.err)

			handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache).RateLimit()(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
			)

			req := httptest.NewRequest(http.MethodPost, "/v1/inventory/holds", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.7, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "booking-app")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, redisCache).RateLimit()(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
