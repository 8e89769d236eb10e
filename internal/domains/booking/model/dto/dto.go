package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	CheckIn  string `json:"check_in"  validate:"required,date"`
	CheckOut string `json:"check_out" validate:"required,date"`
	People   int    `json:"people"    validate:"required,min=1"`
	HoldID   string `json:"hold_id"   validate:"omitempty,uuid"`
}

func (c *CreateBookingRequest) ToModel(user string, stay daterange.Range, roomTypeID string, now time.Time) model.Booking {
	booking := model.Booking{
		ID:           uuid.NewString(),
		UserID:       user,
		RoomID:       c.RoomID,
		RoomTypeID:   roomTypeID,
		Status:       model.StatusPending,
		CheckInDate:  stay.Start,
		CheckOutDate: stay.End,
		People:       c.People,
		Metadata:     gModel.NewMetadata(user, now),
	}

	if c.HoldID != constant.Empty {
		holdID := c.HoldID
		booking.HoldID = &holdID
	}

	return booking
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=30"`
}

type RescheduleRequest struct {
	CheckIn  *string `json:"check_in"  validate:"required_with=CheckOut,omitempty,date"`
	CheckOut *string `json:"check_out" validate:"required_with=CheckIn,omitempty,date"`
	People   *int    `json:"people"    validate:"omitempty,min=1"`
}

// Stay returns the requested stay, or current when no dates were sent.
func (r *RescheduleRequest) Stay(current daterange.Range) (daterange.Range, error) {
	if r.CheckIn == nil || r.CheckOut == nil {
		return current, nil
	}

	return daterange.ParseRange(*r.CheckIn, *r.CheckOut)
}

type BookingResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	RoomID     string  `json:"room_id"`
	RoomTypeID string  `json:"room_type_id"`
	Status     string  `json:"status"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Nights     int     `json:"nights"`
	People     int     `json:"people"`
	Subtotal   int64   `json:"subtotal"`
	Tax        int64   `json:"tax"`
	TotalPrice int64   `json:"total_price"`
	HoldID     *string `json:"hold_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.UserID = booking.UserID
	r.RoomID = booking.RoomID
	r.RoomTypeID = booking.RoomTypeID
	r.Status = string(booking.Status)
	r.CheckIn = daterange.Format(booking.CheckInDate)
	r.CheckOut = daterange.Format(booking.CheckOutDate)
	r.Nights = booking.Stay().Nights()
	r.People = booking.People
	r.Subtotal = booking.Subtotal
	r.Tax = booking.Tax
	r.TotalPrice = booking.TotalPrice
	r.HoldID = booking.HoldID
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingFilter is built from the query string of the list endpoint.
type BookingFilter struct {
	RoomID string `validate:"omitempty,uuid"`
	Status string `validate:"omitempty,max=30"`
	UserID string `validate:"omitempty"`
}

func (f BookingFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	add := func(field string, value any) {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    field,
			Value:    value,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.RoomID != constant.Empty {
		add(model.FieldRoomID, f.RoomID)
	}

	if status, ok := model.ParseStatus(f.Status); ok {
		add(model.FieldStatus, status)
	}

	if f.UserID != constant.Empty {
		add(model.FieldUserID, f.UserID)
	}

	return group
}

// BookingEvent is published for the payment and notification collaborators.
type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	RoomID     string `json:"room_id"`
	RoomTypeID string `json:"room_type_id"`
	Status     string `json:"status"`
	Previous   string `json:"previous_status,omitempty"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	TotalPrice int64  `json:"total_price"`
}

func NewBookingEvent(booking model.Booking, previous model.Status) BookingEvent {
	return BookingEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		RoomID:     booking.RoomID,
		RoomTypeID: booking.RoomTypeID,
		Status:     string(booking.Status),
		Previous:   string(previous),
		CheckIn:    daterange.Format(booking.CheckInDate),
		CheckOut:   daterange.Format(booking.CheckOutDate),
		TotalPrice: booking.TotalPrice,
	}
}
