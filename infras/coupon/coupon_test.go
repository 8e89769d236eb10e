package coupon_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/coupon"
	"hotel/infras/otel/mocks"
	"hotel/shared/failure"
)

func newConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Pricing.Coupon.BaseURL = baseURL
	cfg.Pricing.Coupon.TimeoutSeconds = 2
	cfg.Pricing.Coupon.RateLimit = 100
	cfg.Pricing.Coupon.BurstLimit = 10
	cfg.Pricing.Coupon.BreakerFailures = 5

	return cfg
}

func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         map[string]any
		orderAmount  int64
		wantCode     int
		wantDiscount int64
	}{
		{
			name:         "valid code",
			status:       http.StatusOK,
			body:         map[string]any{"valid": true, "discount": 150},
			orderAmount:  1000,
			wantDiscount: 150,
		},
		{
			name:         "discount capped at order amount",
			status:       http.StatusOK,
			body:         map[string]any{"valid": true, "discount": 5000},
			orderAmount:  1000,
			wantDiscount: 1000,
		},
		{
			name:        "rejected code",
			status:      http.StatusOK,
			body:        map[string]any{"valid": false, "message": "coupon expired"},
			orderAmount: 1000,
			wantCode:    http.StatusBadRequest,
		},
		{
			name:        "client error",
			status:      http.StatusUnprocessableEntity,
			body:        map[string]any{"valid": true, "message": "minimum order not reached"},
			orderAmount: 10,
			wantCode:    http.StatusBadRequest,
		},
		{
			name:        "server error",
			status:      http.StatusBadGateway,
			orderAmount: 1000,
			wantCode:    http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/coupons/validate", r.URL.Path)

				var req map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "SUMMER", req["code"])

				w.WriteHeader(tt.status)

				if tt.body != nil {
					_ = json.NewEncoder(w).Encode(tt.body)
				}
			}))
			defer server.Close()

			client := coupon.New(newConfig(server.URL), mocks.NewOtel())

			got, err := client.Validate(context.Background(), "SUMMER", tt.orderAmount)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Valid)
			assert.Equal(t, tt.wantDiscount, got.Discount)
		})
	}
}

func TestClient_Validate_RejectedMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"valid": false, "message": "coupon expired"})
	}))
	defer server.Close()

	client := coupon.New(newConfig(server.URL), mocks.NewOtel())

	_, err := client.Validate(context.Background(), "SUMMER", 1000)

	require.Error(t, err)
	assert.Equal(t, "coupon expired", err.Error())
}

func TestClient_Validate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := coupon.New(newConfig(url), mocks.NewOtel())

	_, err := client.Validate(context.Background(), "SUMMER", 1000)

	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

func TestClient_Validate_Disabled(t *testing.T) {
	client := coupon.New(newConfig(""), mocks.NewOtel())

	_, err := client.Validate(context.Background(), "SUMMER", 1000)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
