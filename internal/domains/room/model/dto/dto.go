package dto

import (
	"mime/multipart"
	"time"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomTypeID string                `json:"room_type_id" validate:"required,uuid"`
	Name       string                `json:"name"         validate:"required,max=100"`
	Location   string                `json:"location"     validate:"omitempty,max=100"`
	Status     *int16                `json:"status"       validate:"omitempty,min=0,max=2"`
	SingleBeds int                   `json:"single_beds"  validate:"omitempty,min=0"`
	DoubleBeds int                   `json:"double_beds"  validate:"omitempty,min=0"`
	RoomView   string                `json:"room_view"    validate:"omitempty,max=100"`
	RoomSize   int                   `json:"room_size"    validate:"omitempty,min=0"`
	Image      *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string, now time.Time) model.Room {
	status := model.StatusOperational
	if c.Status != nil {
		status = model.Status(*c.Status)
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomTypeID: c.RoomTypeID,
		Name:       c.Name,
		Location:   c.Location,
		Status:     status,
		SingleBeds: c.SingleBeds,
		DoubleBeds: c.DoubleBeds,
		RoomView:   c.RoomView,
		RoomSize:   c.RoomSize,
		Image:      imageURL,
		Metadata:   gModel.NewMetadata(user, now),
	}
}

type UpdateRoomRequest struct {
	Name       string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Location   string                `db:"location"    json:"location"    validate:"omitempty,max=100"`
	SingleBeds *int                  `db:"single_beds" json:"single_beds" validate:"omitempty,min=0"`
	DoubleBeds *int                  `db:"double_beds" json:"double_beds" validate:"omitempty,min=0"`
	RoomView   string                `db:"room_view"   json:"room_view"   validate:"omitempty,max=100"`
	RoomSize   *int                  `db:"room_size"   json:"room_size"   validate:"omitempty,min=0"`
	Image      *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

type UpdateRoomStatusRequest struct {
	Status               *int16  `json:"status"                 validate:"required,min=0,max=2"`
	EstimatedAvailableAt *string `json:"estimated_available_at" validate:"omitempty,date"`
}

// Apply returns the new status and estimated availability. A room going back
// to operational has its estimate cleared unless a new one is sent.
func (r *UpdateRoomStatusRequest) Apply() (model.Status, *time.Time, error) {
	status := model.Status(*r.Status)

	if r.EstimatedAvailableAt == nil || *r.EstimatedAvailableAt == constant.Empty {
		return status, nil, nil
	}

	date, err := daterange.Parse(*r.EstimatedAvailableAt)
	if err != nil {
		return status, nil, err //nolint:wrapcheck
	}

	return status, &date, nil
}

type RoomResponse struct {
	ID                   string  `json:"id"`
	RoomTypeID           string  `json:"room_type_id"`
	Name                 string  `json:"name"`
	Location             string  `json:"location"`
	Status               int16   `json:"status"`
	StatusName           string  `json:"status_name"`
	EstimatedAvailableAt *string `json:"estimated_available_at,omitempty"`
	SingleBeds           int     `json:"single_beds"`
	DoubleBeds           int     `json:"double_beds"`
	RoomView             string  `json:"room_view"`
	RoomSize             int     `json:"room_size"`
	Image                string  `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomTypeID = room.RoomTypeID
	r.Name = room.Name
	r.Location = room.Location
	r.Status = int16(room.Status)
	r.StatusName = room.Status.String()
	r.SingleBeds = room.SingleBeds
	r.DoubleBeds = room.DoubleBeds
	r.RoomView = room.RoomView
	r.RoomSize = room.RoomSize
	r.Image = room.Image
	r.Metadata.FromModel(room.Metadata)

	if room.EstimatedAvailableAt != nil {
		date := daterange.Format(*room.EstimatedAvailableAt)
		r.EstimatedAvailableAt = &date
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// ByRoomType selects the rooms of one room type.
func ByRoomType(roomTypeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomTypeID,
				Value:    roomTypeID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
