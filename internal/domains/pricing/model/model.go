package model

import (
	"hotel/shared/daterange"
	"hotel/shared/model"
	"math"
	"slices"
	"time"
)

const (
	TableName  = "room_prices"
	EntityName = "room_price"

	FieldID           = "id"
	FieldRoomTypeID   = "room_type_id"
	FieldBasicPrice   = "basic_price"
	FieldSpecialPrice = "special_price"
	FieldDiscount     = "discount"
	FieldEvent        = "event"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
)

// TaxRate is the flat tax applied on top of the nightly subtotal at checkout.
const TaxRate = 0.1

// RoomPrice is either the default row of a room type (no window) or an
// override valid from StartDate to EndDate, both inclusive.
type RoomPrice struct {
	ID           string     `db:"id"            json:"id"`
	RoomTypeID   string     `db:"room_type_id"  json:"room_type_id"`
	BasicPrice   *int64     `db:"basic_price"   json:"basic_price"`
	SpecialPrice *int64     `db:"special_price" json:"special_price"`
	Discount     *float64   `db:"discount"      json:"discount"`
	Event        *string    `db:"event"         json:"event"`
	StartDate    *time.Time `db:"start_date"    json:"start_date"`
	EndDate      *time.Time `db:"end_date"      json:"end_date"`
	model.Metadata
}

func (p RoomPrice) IsDefault() bool {
	return p.StartDate == nil && p.EndDate == nil
}

// Covers reports whether date falls inside the override window.
func (p RoomPrice) Covers(date time.Time) bool {
	if p.IsDefault() || p.StartDate == nil || p.EndDate == nil {
		return false
	}

	date = daterange.Truncate(date)

	return !date.Before(daterange.Truncate(*p.StartDate)) && !date.After(daterange.Truncate(*p.EndDate))
}

// OverlapsWindow reports whether two override windows share at least one day.
func (p RoomPrice) OverlapsWindow(start, end time.Time) bool {
	if p.IsDefault() || p.StartDate == nil || p.EndDate == nil {
		return false
	}

	return !daterange.Truncate(*p.StartDate).After(daterange.Truncate(end)) &&
		!daterange.Truncate(start).After(daterange.Truncate(*p.EndDate))
}

// WindowDays is the inclusive length of the override window.
func (p RoomPrice) WindowDays() int {
	if p.StartDate == nil || p.EndDate == nil {
		return math.MaxInt
	}

	return daterange.DaysBetween(*p.StartDate, *p.EndDate) + 1
}

func (p RoomPrice) DiscountRate() float64 {
	if p.Discount == nil {
		return 0
	}

	return *p.Discount
}

// Round rounds half away from zero to whole currency units.
func Round(value float64) int64 {
	return int64(math.Round(value))
}

// ApplyTax returns the tax amount and total for a subtotal.
func ApplyTax(subtotal int64) (tax, total int64) {
	total = Round(float64(subtotal) * (1 + TaxRate))

	return total - subtotal, total
}

// Demand surcharges, used only when dynamic pricing is enabled. The first
// matching rule wins: holiday, then Friday or Saturday night, then peak month.
const (
	HolidaySurcharge = 0.2
	WeekendSurcharge = 0.1
	PeakSurcharge    = 0.15
)

type monthDay struct {
	month time.Month
	day   int
}

var holidays = []monthDay{
	{time.January, 1},
	{time.September, 2},
	{time.December, 25},
}

var peakMonths = []time.Month{time.June, time.July, time.August, time.December}

// SurchargeRate returns the demand surcharge for the night starting on date.
func SurchargeRate(date time.Time) float64 {
	if slices.Contains(holidays, monthDay{date.Month(), date.Day()}) {
		return HolidaySurcharge
	}

	if weekday := date.Weekday(); weekday == time.Friday || weekday == time.Saturday {
		return WeekendSurcharge
	}

	if slices.Contains(peakMonths, date.Month()) {
		return PeakSurcharge
	}

	return 0
}

// Surcharged applies rate to price.
func Surcharged(price int64, rate float64) int64 {
	if rate == 0 {
		return price
	}

	return Round(float64(price) * (1 + rate))
}

// Quote is the resolved price of one night.
type Quote struct {
	Date      time.Time
	Price     int64
	BasePrice int64
	Discount  float64
	Surcharge float64
	Event     *string
	Special   bool
	PriceID   string
}

// DiscountAmount is zero when a special price replaced the discount path.
func (q Quote) DiscountAmount() int64 {
	if q.Special {
		return 0
	}

	return q.BasePrice - q.Price
}

// Checkout holds the amounts stored on a booking.
type Checkout struct {
	Nights   int
	Subtotal int64
	Tax      int64
	Total    int64
}

func NewCheckout(nights int, subtotal int64) Checkout {
	tax, total := ApplyTax(subtotal)

	return Checkout{Nights: nights, Subtotal: subtotal, Tax: tax, Total: total}
}
