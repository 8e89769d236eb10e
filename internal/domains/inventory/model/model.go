package model

import (
	"hotel/shared/daterange"
	"time"
)

const (
	TableName  = "room_holds"
	EntityName = "room_hold"

	FieldID           = "id"
	FieldRoomTypeID   = "room_type_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldQuantity     = "quantity"
	FieldExpiresAt    = "expires_at"
)

const (
	MinHoldMinutes = 1
	MaxHoldMinutes = 1440
)

type Hold struct {
	ID           string    `db:"id"             json:"id"`
	RoomTypeID   string    `db:"room_type_id"   json:"room_type_id"`
	CheckInDate  time.Time `db:"check_in_date"  json:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date" json:"check_out_date"`
	Quantity     int       `db:"quantity"       json:"quantity"`
	ExpiresAt    time.Time `db:"expires_at"     json:"expires_at"`
	CreatedAt    time.Time `db:"created_at"     json:"created_at"`
	CreatedBy    string    `db:"created_by"     json:"created_by"`
}

func (h Hold) Stay() daterange.Range {
	return daterange.Range{Start: daterange.Truncate(h.CheckInDate), End: daterange.Truncate(h.CheckOutDate)}
}

// IsExpired treats a hold as gone from the instant it expires.
func (h Hold) IsExpired(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}

// ClampHoldMinutes applies the default when minutes is zero and bounds the result.
func ClampHoldMinutes(minutes, fallback int) int {
	if minutes == 0 {
		minutes = fallback
	}

	return min(max(minutes, MinHoldMinutes), MaxHoldMinutes)
}

// Availability is the result of one capacity check.
type Availability struct {
	RoomTypeID     string
	RoomID         string
	Quantity       int
	Occupied       int
	Held           int
	Requested      int
	AvailableCount int
	IsAvailable    bool
	Reason         string
}

// Compute fills AvailableCount and IsAvailable from the counters. A non empty
// Reason marks the target as not sellable at all.
func (a *Availability) Compute() {
	if a.Reason != "" {
		a.AvailableCount = 0
		a.IsAvailable = false

		return
	}

	a.AvailableCount = max(a.Quantity-a.Occupied-a.Held, 0)
	a.IsAvailable = a.AvailableCount >= a.Requested
}
