package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "room_logs"
	EntityName = "room_log"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
)

type EventType string

const (
	EventBookCreated       EventType = "BOOK_CREATED"
	EventBookStatusChanged EventType = "BOOK_STATUS_CHANGED"
	EventBookRescheduled   EventType = "BOOK_RESCHEDULED"
	EventHoldCreated       EventType = "HOLD_CREATED"
	EventHoldReleased      EventType = "HOLD_RELEASED"
	EventHoldConverted     EventType = "HOLD_CONVERTED"
	EventRoomStatusChanged EventType = "ROOM_STATUS_CHANGED"
	EventHotelCascade      EventType = "HOTEL_CASCADE"
)

type RoomLog struct {
	ID           string    `db:"id"`
	RoomID       *string   `db:"room_id"`
	RoomTypeID   string    `db:"room_type_id"`
	EventType    EventType `db:"event_type"`
	ExtraContext string    `db:"extra_context"`
	CreatedAt    time.Time `db:"created_at"`
}

// New builds a log row; extra is stored as JSON and dropped if it cannot be encoded.
func New(event EventType, roomTypeID, roomID string, extra any, now time.Time) RoomLog {
	log := RoomLog{
		ID:         uuid.NewString(),
		RoomTypeID: roomTypeID,
		EventType:  event,
		CreatedAt:  now,
	}

	if roomID != "" {
		log.RoomID = &roomID
	}

	if raw, err := json.Marshal(extra); err == nil && extra != nil {
		log.ExtraContext = string(raw)
	}

	return log
}
