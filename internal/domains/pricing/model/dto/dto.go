package dto

import (
	"hotel/internal/domains/pricing/model"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"time"

	"github.com/google/uuid"
)

type PriceResponse struct {
	Date      string  `json:"date"`
	Price     int64   `json:"price"`
	BasePrice int64   `json:"base_price"`
	Discount  float64 `json:"discount"`
	Surcharge float64 `json:"surcharge,omitempty"`
	Event     *string `json:"event,omitempty"`
	Special   bool    `json:"special_price_applied"`
}

func (r *PriceResponse) FromModel(quote model.Quote) {
	r.Date = daterange.Format(quote.Date)
	r.Price = quote.Price
	r.BasePrice = quote.BasePrice
	r.Discount = quote.Discount
	r.Surcharge = quote.Surcharge
	r.Event = quote.Event
	r.Special = quote.Special
}

type PriceForDateResponse struct {
	RoomTypeID string `json:"room_type_id"`
	PriceResponse
}

type PriceRangeResponse struct {
	RoomTypeID string          `json:"room_type_id"`
	Start      string          `json:"start_date"`
	End        string          `json:"end_date"`
	Days       []PriceResponse `json:"days"`
	Min        int64           `json:"min_price"`
	Max        int64           `json:"max_price"`
	Average    int64           `json:"average_price"`
}

type CalculatePriceRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	CheckIn    string `json:"check_in"     validate:"required,date"`
	CheckOut   string `json:"check_out"    validate:"required,date"`
	Guests     *int   `json:"guests"       validate:"omitempty,min=1"`
	PromoCode  string `json:"promo_code"   validate:"omitempty,max=50"`
}

type BreakdownLine struct {
	Date           string  `json:"date"`
	BasePrice      int64   `json:"base_price"`
	Event          *string `json:"event,omitempty"`
	DiscountRate   float64 `json:"discount_rate"`
	DiscountAmount int64   `json:"discount_amount"`
	SurchargeRate  float64 `json:"surcharge_rate,omitempty"`
	FinalPrice     int64   `json:"final_price"`
}

func (l *BreakdownLine) FromModel(quote model.Quote) {
	l.Date = daterange.Format(quote.Date)
	l.BasePrice = quote.BasePrice
	l.Event = quote.Event
	l.DiscountRate = quote.Discount
	l.DiscountAmount = quote.DiscountAmount()
	l.SurchargeRate = quote.Surcharge
	l.FinalPrice = quote.Price
}

type CalculatePriceResponse struct {
	RoomTypeID    string          `json:"room_type_id"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	Nights        int             `json:"nights"`
	Subtotal      int64           `json:"subtotal"`
	PromoCode     string          `json:"promo_code,omitempty"`
	PromoMessage  string          `json:"promo_message,omitempty"`
	TotalDiscount int64           `json:"total_discount"`
	TotalPrice    int64           `json:"total_price"`
	Breakdown     []BreakdownLine `json:"breakdown"`
}

type CheckoutTotalResponse struct {
	RoomTypeID string `json:"room_type_id"`
	Nights     int    `json:"nights"`
	Subtotal   int64  `json:"subtotal"`
	Tax        int64  `json:"tax"`
	Total      int64  `json:"total"`
}

type CreatePriceRequest struct {
	BasicPrice   *int64   `json:"basic_price"   validate:"omitempty,min=0"`
	SpecialPrice *int64   `json:"special_price" validate:"omitempty,min=0"`
	Discount     *float64 `json:"discount"      validate:"omitempty,min=0,max=1"`
	Event        *string  `json:"event"         validate:"omitempty,max=100"`
	StartDate    *string  `json:"start_date"    validate:"required_with=EndDate,omitempty,date"`
	EndDate      *string  `json:"end_date"      validate:"required_with=StartDate,omitempty,date"`
}

// Window parses the optional override window. Both dates nil means a default row.
func (c *CreatePriceRequest) Window() (start, end *time.Time, err error) {
	return parseWindow(c.StartDate, c.EndDate)
}

func (c *CreatePriceRequest) ToModel(roomTypeID, user string, start, end *time.Time, now time.Time) model.RoomPrice {
	return model.RoomPrice{
		ID:           uuid.NewString(),
		RoomTypeID:   roomTypeID,
		BasicPrice:   c.BasicPrice,
		SpecialPrice: c.SpecialPrice,
		Discount:     c.Discount,
		Event:        c.Event,
		StartDate:    start,
		EndDate:      end,
		Metadata:     gModel.NewMetadata(user, now),
	}
}

type UpdatePriceRequest struct {
	BasicPrice   *int64   `db:"basic_price"   json:"basic_price"   validate:"omitempty,min=0"`
	SpecialPrice *int64   `db:"special_price" json:"special_price" validate:"omitempty,min=0"`
	Discount     *float64 `db:"discount"      json:"discount"      validate:"omitempty,min=0,max=1"`
	Event        *string  `db:"event"         json:"event"         validate:"omitempty,max=100"`
	StartDate    *string  `json:"start_date"  validate:"required_with=EndDate,omitempty,date"`
	EndDate      *string  `json:"end_date"    validate:"required_with=StartDate,omitempty,date"`
}

func (u *UpdatePriceRequest) Window() (start, end *time.Time, err error) {
	return parseWindow(u.StartDate, u.EndDate)
}

// Apply returns a copy of price with the requested changes.
func (u *UpdatePriceRequest) Apply(price model.RoomPrice, start, end *time.Time) model.RoomPrice {
	if u.BasicPrice != nil {
		price.BasicPrice = u.BasicPrice
	}

	if u.SpecialPrice != nil {
		price.SpecialPrice = u.SpecialPrice
	}

	if u.Discount != nil {
		price.Discount = u.Discount
	}

	if u.Event != nil {
		price.Event = u.Event
	}

	if start != nil && end != nil {
		price.StartDate = start
		price.EndDate = end
	}

	return price
}

func parseWindow(startValue, endValue *string) (start, end *time.Time, err error) {
	if startValue == nil || endValue == nil {
		return nil, nil, nil
	}

	s, err := daterange.Parse(*startValue)
	if err != nil {
		return nil, nil, err
	}

	e, err := daterange.Parse(*endValue)
	if err != nil {
		return nil, nil, err
	}

	return &s, &e, nil
}

type RoomPriceResponse struct {
	ID           string   `json:"id"`
	RoomTypeID   string   `json:"room_type_id"`
	BasicPrice   *int64   `json:"basic_price"`
	SpecialPrice *int64   `json:"special_price"`
	Discount     *float64 `json:"discount"`
	Event        *string  `json:"event"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	IsDefault    bool     `json:"is_default"`
	gDto.Metadata
}

func (r *RoomPriceResponse) FromModel(price model.RoomPrice) {
	r.ID = price.ID
	r.RoomTypeID = price.RoomTypeID
	r.BasicPrice = price.BasicPrice
	r.SpecialPrice = price.SpecialPrice
	r.Discount = price.Discount
	r.Event = price.Event
	r.IsDefault = price.IsDefault()

	if price.StartDate != nil {
		start := daterange.Format(*price.StartDate)
		r.StartDate = &start
	}

	if price.EndDate != nil {
		end := daterange.Format(*price.EndDate)
		r.EndDate = &end
	}

	r.Metadata.FromModel(price.Metadata)
}

type ListPricesResponse struct {
	RoomTypeID string              `json:"room_type_id"`
	Prices     []RoomPriceResponse `json:"prices"`
}

func (r *ListPricesResponse) FromModels(roomTypeID string, prices []model.RoomPrice) {
	r.RoomTypeID = roomTypeID
	r.Prices = make([]RoomPriceResponse, len(prices))

	for i, price := range prices {
		r.Prices[i].FromModel(price)
	}
}
