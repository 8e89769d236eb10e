package model

import (
	hotelModel "hotel/internal/domains/hotel/model"
	"hotel/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID           = "id"
	FieldHotelID      = "hotel_id"
	FieldName         = "name"
	FieldMaxGuests    = "max_guests"
	FieldQuantity     = "quantity"
	FieldAvailability = "availability"
)

// RoomType carries the owning hotel's owner and status through a join so that
// ownership and cascade state are read with the row that gets locked.
type RoomType struct {
	ID           string            `db:"id"`
	HotelID      string            `db:"hotel_id"`
	Name         string            `db:"name"`
	MaxGuests    int               `db:"max_guests"`
	Quantity     int               `db:"quantity"`
	Availability bool              `db:"availability"`
	Description  string            `db:"description"`
	HotelOwnerID string            `db:"hotel_owner_id" table:"hotels" column:"owner_id"`
	HotelStatus  hotelModel.Status `db:"hotel_status"   table:"hotels" column:"status"`
	model.Metadata
}

func (RoomType) GetJoinQuery() string {
	return "JOIN hotels ON hotels.id = room_types.hotel_id"
}

// Bookable reports whether the type can take new holds or bookings.
func (r RoomType) Bookable() (bool, string) {
	switch {
	case r.HotelStatus != hotelModel.StatusActive:
		return false, "hotel is disabled"
	case !r.Availability:
		return false, "room type is not available"
	default:
		return true, ""
	}
}
