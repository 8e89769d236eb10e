package model

import (
	"hotel/shared/daterange"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldRoomID       = "room_id"
	FieldRoomTypeID   = "room_type_id"
	FieldStatus       = "status"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldPeople       = "people"
	FieldSubtotal     = "subtotal"
	FieldTax          = "tax"
	FieldTotalPrice   = "total_price"
	FieldHoldID       = "hold_id"

	JoinTableRooms = "rooms"
)

type Booking struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	RoomID       string    `db:"room_id"`
	RoomTypeID   string    `db:"room_type_id"   table:"rooms" column:"room_type_id"`
	Status       Status    `db:"status"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	People       int       `db:"people"`
	Subtotal     int64     `db:"subtotal"`
	Tax          int64     `db:"tax"`
	TotalPrice   int64     `db:"total_price"`
	HoldID       *string   `db:"hold_id"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id"
}

func (b Booking) Stay() daterange.Range {
	return daterange.Range{Start: daterange.Truncate(b.CheckInDate), End: daterange.Truncate(b.CheckOutDate)}
}
