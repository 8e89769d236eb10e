package dto

import (
	"hotel/internal/domains/inventory/model"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"time"
)

type CheckAvailabilityRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required_without=RoomID,omitempty,uuid"`
	RoomID     string `json:"room_id"      validate:"required_without=RoomTypeID,omitempty,uuid"`
	CheckIn    string `json:"check_in"     validate:"required,date"`
	CheckOut   string `json:"check_out"    validate:"required,date"`
	Quantity   *int   `json:"quantity"     validate:"omitempty"`
}

// RequestedQuantity defaults to one room.
func (c *CheckAvailabilityRequest) RequestedQuantity() int {
	if c.Quantity == nil {
		return 1
	}

	return *c.Quantity
}

type AvailabilityResponse struct {
	RoomTypeID     string `json:"room_type_id,omitempty"`
	RoomID         string `json:"room_id,omitempty"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Available      bool   `json:"available"`
	AvailableCount int    `json:"available_count"`
	Quantity       int    `json:"quantity"`
	Occupied       int    `json:"occupied"`
	Held           int    `json:"held"`
	Reason         string `json:"reason,omitempty"`
}

func (r *AvailabilityResponse) FromModel(a model.Availability, stay daterange.Range) {
	r.RoomTypeID = a.RoomTypeID
	r.RoomID = a.RoomID
	r.CheckIn = daterange.Format(stay.Start)
	r.CheckOut = daterange.Format(stay.End)
	r.Available = a.IsAvailable
	r.AvailableCount = a.AvailableCount
	r.Quantity = a.Quantity
	r.Occupied = a.Occupied
	r.Held = a.Held
	r.Reason = a.Reason
}

type CreateHoldRequest struct {
	RoomTypeID          string `json:"room_type_id"          validate:"required,uuid"`
	CheckIn             string `json:"check_in"              validate:"required,date"`
	CheckOut            string `json:"check_out"             validate:"required,date"`
	Quantity            int    `json:"quantity"              validate:"required"`
	HoldDurationMinutes int    `json:"hold_duration_minutes" validate:"omitempty"`
}

type ReleaseHoldRequest struct {
	HoldID string `json:"hold_id" validate:"required,uuid"`
}

type HoldResponse struct {
	HoldID     string `json:"hold_id"`
	RoomTypeID string `json:"room_type_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Quantity   int    `json:"quantity"`
	ExpiresAt  string `json:"expires_at"`
}

func (r *HoldResponse) FromModel(hold model.Hold) {
	r.HoldID = hold.ID
	r.RoomTypeID = hold.RoomTypeID
	r.CheckIn = daterange.Format(hold.CheckInDate)
	r.CheckOut = daterange.Format(hold.CheckOutDate)
	r.Quantity = hold.Quantity
	r.ExpiresAt = hold.ExpiresAt.Format(constant.DateFormat)
}

type ReleaseHoldResponse struct {
	HoldID   string `json:"hold_id"`
	Released bool   `json:"released"`
}

type CalendarDay struct {
	Date      string `json:"date"`
	Quantity  int    `json:"quantity"`
	Booked    int    `json:"booked"`
	Held      int    `json:"held"`
	Available int    `json:"available"`
}

type CalendarResponse struct {
	RoomTypeID string        `json:"room_type_id"`
	Start      string        `json:"start"`
	End        string        `json:"end"`
	Days       []CalendarDay `json:"days"`
}

// HoldEvent is published on the hold topic.
type HoldEvent struct {
	HoldID     string    `json:"hold_id"`
	RoomTypeID string    `json:"room_type_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Quantity   int       `json:"quantity"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func NewHoldEvent(hold model.Hold) HoldEvent {
	return HoldEvent{
		HoldID:     hold.ID,
		RoomTypeID: hold.RoomTypeID,
		CheckIn:    daterange.Format(hold.CheckInDate),
		CheckOut:   daterange.Format(hold.CheckOutDate),
		Quantity:   hold.Quantity,
		ExpiresAt:  hold.ExpiresAt,
	}
}
