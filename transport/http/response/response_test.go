package response_test

import (
	"errors"
	"fmt"
	"hotel/shared/failure"
	"hotel/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantCode       int
		wantBody       string
		wantRetryAfter string
	}{
		{
			name:     "conflict keeps its message",
			err:      fmt.Errorf("failed to create hold: %w", failure.Conflict("not enough rooms available")),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"not enough rooms available","kind":"conflict"}`,
		},
		{
			name:     "deeply wrapped failure reports only its own message",
			err:      fmt.Errorf("failed to create booking: %w", fmt.Errorf("failed to lock room type: %w", failure.NotFound("room type not found"))),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"room type not found","kind":"not_found"}`,
		},
		{
			name:           "transient asks for a retry",
			err:            failure.Transient("room type is busy, please retry"),
			wantCode:       http.StatusServiceUnavailable,
			wantBody:       `{"error":"room type is busy, please retry","kind":"transient"}`,
			wantRetryAfter: "1",
		},
		{
			name:     "plain error is masked",
			err:      errors.New(`pq: relation "bookings" does not exist`),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error","kind":"internal"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get("Retry-After"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"available": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"available":3}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
