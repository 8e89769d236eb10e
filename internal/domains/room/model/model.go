package model

import (
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                   = "id"
	FieldRoomTypeID           = "room_type_id"
	FieldName                 = "name"
	FieldLocation             = "location"
	FieldStatus               = "status"
	FieldEstimatedAvailableAt = "estimated_available_at"
	FieldImage                = "image"
)

type Status int16

const (
	StatusDisabled    Status = 0
	StatusOperational Status = 1
	StatusMaintenance Status = 2
)

func (s Status) IsValid() bool {
	return s == StatusDisabled || s == StatusOperational || s == StatusMaintenance
}

func (s Status) String() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusOperational:
		return "operational"
	case StatusMaintenance:
		return "maintenance"
	default:
		return "unknown"
	}
}

// CountsTowardQuantity reports whether the room is part of its type's sellable quantity.
func (s Status) CountsTowardQuantity() bool {
	return s != StatusDisabled
}

type Room struct {
	ID                   string     `db:"id"`
	RoomTypeID           string     `db:"room_type_id"`
	Name                 string     `db:"name"`
	Location             string     `db:"location"`
	Status               Status     `db:"status"`
	EstimatedAvailableAt *time.Time `db:"estimated_available_at"`
	SingleBeds           int        `db:"single_beds"`
	DoubleBeds           int        `db:"double_beds"`
	RoomView             string     `db:"room_view"`
	RoomSize             int        `db:"room_size"`
	Image                string     `db:"image"`
	model.Metadata
}

// Unavailable explains why the room cannot be sold for a stay starting on
// checkIn, or returns an empty string when it can.
func (r Room) Unavailable(checkIn time.Time) string {
	switch {
	case r.Status == StatusDisabled:
		return "room is disabled"
	case r.Status == StatusMaintenance:
		return "room is under maintenance"
	case r.EstimatedAvailableAt != nil && checkIn.Before(*r.EstimatedAvailableAt):
		return "room is not available until " + r.EstimatedAvailableAt.Format(time.DateOnly)
	default:
		return ""
	}
}
