package validator_test

import (
	"hotel/shared/failure"
	"hotel/shared/validator"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	CheckIn    string `json:"check_in"     validate:"required,date"`
	Quantity   int    `json:"quantity"     validate:"required,min=1,max=10"`
	Status     status `json:"status"       validate:"omitempty,enum"`
}

type status string

func (s status) IsValid() bool {
	return s == "pending" || s == "accepted"
}

type uploadRequest struct {
	Image *multipart.FileHeader `json:"image" validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=0.5"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid",
			body: `{"room_type_id":"8a3f7c52-1d9e-4b8a-9f3c-2e6d5a7b1c40","check_in":"2025-12-01","quantity":2,"status":"pending"}`,
		},
		{
			name:    "malformed body",
			body:    `{"quantity":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "every field error is reported",
			body:    `{"room_type_id":"rt-1","check_in":"01/12/2025","quantity":0}`,
			wantErr: "room_type_id must be a valid UUID; check_in must be a date in YYYY-MM-DD format; quantity is required",
		},
		{
			name:    "limit",
			body:    `{"room_type_id":"8a3f7c52-1d9e-4b8a-9f3c-2e6d5a7b1c40","check_in":"2025-12-01","quantity":11}`,
			wantErr: "quantity must be less than or equal to 10",
		},
		{
			name:    "enum",
			body:    `{"room_type_id":"8a3f7c52-1d9e-4b8a-9f3c-2e6d5a7b1c40","check_in":"2025-12-01","quantity":1,"status":"lost"}`,
			wantErr: "status has an unsupported value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_File(t *testing.T) {
	image := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "room.png",
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
			Size:     size,
		}
	}

	assert.NoError(t, validator.ValidateStruct(&uploadRequest{}))
	assert.NoError(t, validator.ValidateStruct(&uploadRequest{Image: image("image/png", 1024)}))
	assert.ErrorContains(t, validator.ValidateStruct(&uploadRequest{Image: image("image/gif", 1024)}), "image must be one of image/png image/jpeg")
	assert.ErrorContains(t, validator.ValidateStruct(&uploadRequest{Image: image("image/png", 1<<20)}), "image must not exceed 0.5 MB")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-12-24", "date"))
	assert.Error(t, validator.ValidateVar("2025-13-01", "date"))
	assert.NoError(t, validator.ValidateVar("8a3f7c52-1d9e-4b8a-9f3c-2e6d5a7b1c40", "uuid"))

	err := validator.ValidateVar("", "required")
	assert.EqualError(t, err, " is required")
	assert.Equal(t, failure.KindInvalidArgument, failure.KindOf(err))
}
