package coupon

//go:generate go run go.uber.org/mock/mockgen -source=./coupon.go -destination=./mocks/coupon_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	validatePath     = "/coupons/validate"
	otelAttrCode     = "coupon.code"
	maxResponseBytes = 1 << 20
)

var errUpstream = errors.New("coupon service returned a server error")

type Result struct {
	Code     string `json:"code"`
	Valid    bool   `json:"valid"`
	Discount int64  `json:"discount"`
	Message  string `json:"message"`
}

// Client validates promo codes against the coupon service.
type Client interface {
	Validate(ctx context.Context, code string, orderAmount int64) (Result, error)
}

type validateRequest struct {
	Code        string `json:"code"`
	OrderAmount int64  `json:"order_amount"`
}

type clientImpl struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	c := cfg.Pricing.Coupon

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "coupon-api",
		MaxRequests: c.BreakerMaxRequests,
		Interval:    time.Duration(c.BreakerIntervalSeconds) * time.Second,
		Timeout:     time.Duration(c.BreakerTimeoutSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= max(c.BreakerFailures, 1)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &clientImpl{
		http:    &http.Client{Timeout: time.Duration(max(c.TimeoutSeconds, 1)) * time.Second},
		baseURL: strings.TrimRight(c.BaseURL, "/"),
		apiKey:  c.APIKey,
		limiter: rate.NewLimiter(rate.Limit(c.RateLimit), max(c.BurstLimit, 1)),
		breaker: breaker,
		otel:    otel,
	}
}

// Validate asks the coupon service whether code applies to an order. A
// rejected code is reported as a bad request carrying the service's message,
// an unreachable service as a transient failure.
func (c *clientImpl) Validate(ctx context.Context, code string, orderAmount int64) (res Result, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelCouponScopeName, constant.OtelCouponScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrCode, code)

	if c.baseURL == constant.Empty {
		return res, failure.BadRequestFromString("promo codes are not available") // nolint:wrapcheck
	}

	if err = c.limiter.Wait(ctx); err != nil {
		log.Warn().Err(err).Msg("coupon rate limiter aborted")

		return res, failure.Transient("coupon service is busy, please retry") // nolint:wrapcheck
	}

	out, err := c.breaker.Execute(func() (any, error) {
		return c.do(ctx, validateRequest{Code: code, OrderAmount: orderAmount})
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Str("code", code).Msg("failed to validate coupon")

		return res, failure.Transient("coupon service is unavailable, please retry") // nolint:wrapcheck
	}

	res, _ = out.(Result)

	if !res.Valid {
		msg := res.Message
		if msg == constant.Empty {
			msg = "promo code is not valid"
		}

		return res, failure.BadRequestFromString(msg) // nolint:wrapcheck
	}

	res.Discount = min(max(res.Discount, 0), orderAmount)

	return res, nil
}

// do performs one call. Client errors are returned as successful breaker
// results so that a bad code never trips the breaker.
func (c *clientImpl) do(ctx context.Context, body validateRequest) (Result, error) {
	var res Result

	payload, err := json.Marshal(body)
	if err != nil {
		return res, fmt.Errorf("failed to marshal coupon request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validatePath, bytes.NewReader(payload))
	if err != nil {
		return res, fmt.Errorf("failed to build coupon request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	if c.apiKey != constant.Empty {
		req.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return res, fmt.Errorf("failed to call coupon service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return res, fmt.Errorf("failed to read coupon response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return res, fmt.Errorf("%w: status %d", errUpstream, resp.StatusCode)
	}

	if len(data) > 0 {
		if err = json.Unmarshal(data, &res); err != nil {
			return res, fmt.Errorf("failed to decode coupon response: %w", err)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		res.Valid = false
	}

	res.Code = body.Code

	return res, nil
}
