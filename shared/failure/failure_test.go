package failure_test

import (
	"errors"
	"fmt"
	"hotel/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind failure.Kind
		wantCode int
		wantMsg  string
	}{
		{"bad request", failure.BadRequest(errors.New("checkout must be after checkin")), failure.KindInvalidArgument, http.StatusBadRequest, "checkout must be after checkin"},
		{"bad request from string", failure.BadRequestFromString("quantity must be positive"), failure.KindInvalidArgument, http.StatusBadRequest, "quantity must be positive"},
		{"unauthorized", failure.Unauthorized("missing token"), failure.KindUnauthorized, http.StatusUnauthorized, "missing token"},
		{"forbidden", failure.Forbidden("not the hotel owner"), failure.KindForbidden, http.StatusForbidden, "not the hotel owner"},
		{"not found", failure.NotFound("room_type"), failure.KindNotFound, http.StatusNotFound, "room_type"},
		{"conflict", failure.Conflict("not enough rooms available"), failure.KindConflict, http.StatusConflict, "not enough rooms available"},
		{"transient", failure.Transient("room type is busy, please retry"), failure.KindTransient, http.StatusServiceUnavailable, "room type is busy, please retry"},
		{"predefined", failure.ResourceRestrictedError, failure.KindForbidden, http.StatusForbidden, "You don't have permission to access this resource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure

			assert.ErrorAs(t, tt.err, &fail)
			assert.Equal(t, tt.wantKind, fail.Kind)
			assert.Equal(t, tt.wantCode, fail.Code)
			assert.EqualError(t, tt.err, tt.wantMsg)
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to create booking: %w", failure.Conflict("sold out"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
	assert.Equal(t, failure.KindConflict, failure.KindOf(wrapped))
	assert.Equal(t, failure.KindInternal, failure.KindOf(errors.New("boom")))
}

func TestIsCode(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", failure.NotFound("hotel"))

	assert.True(t, failure.IsCode(wrapped, http.StatusNotFound))
	assert.False(t, failure.IsCode(wrapped, http.StatusConflict))
	assert.False(t, failure.IsCode(nil, http.StatusInternalServerError))
	assert.True(t, failure.IsCode(errors.New("boom"), http.StatusInternalServerError))
}

func TestRetryable(t *testing.T) {
	assert.True(t, failure.Retryable(fmt.Errorf("tx: %w", failure.Transient("serialization failure"))))
	assert.False(t, failure.Retryable(failure.Conflict("sold out")))
	assert.False(t, failure.Retryable(nil))
}

func TestFailure_Is(t *testing.T) {
	err := fmt.Errorf("cancel: %w", failure.Forbidden("not your booking"))

	assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	assert.NotErrorIs(t, err, failure.NotFound("booking"))
}

func TestMessageOf(t *testing.T) {
	wrapped := fmt.Errorf("failed to create hold: %w", failure.Conflict("not enough rooms available"))

	assert.Equal(t, "not enough rooms available", failure.MessageOf(wrapped))
	assert.Equal(t, "dial tcp: refused", failure.MessageOf(errors.New("dial tcp: refused")))
}
