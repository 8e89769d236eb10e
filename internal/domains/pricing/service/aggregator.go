package service

import (
	"context"
	"fmt"
	"hotel/internal/domains/pricing/model"
	"hotel/internal/domains/pricing/model/dto"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

// quote resolves every date with one load of the price rows.
func (s *serviceImpl) quote(ctx context.Context, roomTypeID string, days []time.Time) ([]model.Quote, error) {
	rows, err := s.rows(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	return s.resolver(rows).all(days)
}

func (r resolver) all(days []time.Time) (quotes []model.Quote, err error) {
	quotes = make([]model.Quote, len(days))

	for i, day := range days {
		if quotes[i], err = r.at(day); err != nil {
			return nil, err
		}
	}

	return quotes, nil
}

// PriceRange prices every date from start to end, both included.
func (s *serviceImpl) PriceRange(ctx context.Context, roomTypeID string, start, end time.Time) (res dto.PriceRangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PriceRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	days := daterange.Inclusive(start, end)
	if len(days) == 0 {
		return res, failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	if len(days) > s.maxRangeDays() {
		return res, failure.BadRequestFromString(fmt.Sprintf("price range must not exceed %d days", s.maxRangeDays())) // nolint:wrapcheck
	}

	quotes, err := s.quote(ctx, roomTypeID, days)
	if err != nil {
		return res, err
	}

	res.RoomTypeID = roomTypeID
	res.Start = daterange.Format(days[0])
	res.End = daterange.Format(days[len(days)-1])
	res.Days = make([]dto.PriceResponse, len(quotes))

	var sum int64

	for i, quote := range quotes {
		res.Days[i].FromModel(quote)
		sum += quote.Price

		if i == 0 || quote.Price < res.Min {
			res.Min = quote.Price
		}

		if quote.Price > res.Max {
			res.Max = quote.Price
		}
	}

	res.Average = model.Round(float64(sum) / float64(len(quotes)))

	return res, nil
}

func (s *serviceImpl) GetPriceRange(ctx context.Context, roomTypeID, start, end string) (res dto.PriceRangeResponse, err error) {
	startDate, err := daterange.Parse(start)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	endDate, err := daterange.Parse(end)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	return s.PriceRange(ctx, roomTypeID, startDate, endDate)
}

// CalculatePrice prices every night of the stay and applies an optional promo
// code on the subtotal.
func (s *serviceImpl) CalculatePrice(ctx context.Context, req dto.CalculatePriceRequest) (res dto.CalculatePriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculatePrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := daterange.ParseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if req.Guests != nil {
		if err = s.checkGuests(ctx, req.RoomTypeID, *req.Guests); err != nil {
			return res, err
		}
	}

	quotes, err := s.quote(ctx, req.RoomTypeID, stay.Nightly())
	if err != nil {
		return res, err
	}

	res.RoomTypeID = req.RoomTypeID
	res.CheckIn = daterange.Format(stay.Start)
	res.CheckOut = daterange.Format(stay.End)
	res.Nights = stay.Nights()
	res.Breakdown = make([]dto.BreakdownLine, len(quotes))

	for i, quote := range quotes {
		res.Breakdown[i].FromModel(quote)
		res.Subtotal += quote.Price
	}

	res.TotalPrice = res.Subtotal

	if req.PromoCode != constant.Empty {
		result, err := s.coupon.Validate(ctx, req.PromoCode, res.Subtotal)
		if err != nil {
			log.Warn().Err(err).Str("promo_code", req.PromoCode).Msg("promo code not applied")

			return res, err
		}

		res.PromoCode = req.PromoCode
		res.PromoMessage = result.Message
		res.TotalDiscount = min(result.Discount, res.Subtotal)
		res.TotalPrice = res.Subtotal - res.TotalDiscount
	}

	return res, nil
}

// CheckoutTotal adds the flat tax on top of the nightly subtotal. Promo codes
// do not apply here, so the total matches what a booking stores.
func (s *serviceImpl) CheckoutTotal(ctx context.Context, req dto.CalculatePriceRequest) (res dto.CheckoutTotalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckoutTotal")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.PromoCode = constant.Empty

	calc, err := s.CalculatePrice(ctx, req)
	if err != nil {
		return res, err
	}

	checkout := model.NewCheckout(calc.Nights, calc.Subtotal)

	res.RoomTypeID = calc.RoomTypeID
	res.Nights = calc.Nights
	res.Subtotal = checkout.Subtotal
	res.Tax = checkout.Tax
	res.Total = checkout.Total

	return res, nil
}

// Quote returns the amounts a booking of stay is stored with.
func (s *serviceImpl) Quote(ctx context.Context, roomTypeID string, stay daterange.Range) (res model.Checkout, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if stay.Nights() <= 0 {
		return res, failure.BadRequest(daterange.ErrInvalidRange) // nolint:wrapcheck
	}

	rows, err := s.freshRows(ctx, roomTypeID)
	if err != nil {
		return res, err
	}

	quotes, err := s.resolver(rows).all(stay.Nightly())
	if err != nil {
		return res, err
	}

	var subtotal int64
	for _, quote := range quotes {
		subtotal += quote.Price
	}

	return model.NewCheckout(len(quotes), subtotal), nil
}

func (s *serviceImpl) checkGuests(ctx context.Context, roomTypeID string, guests int) error {
	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get room type")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if guests > roomType.MaxGuests {
		return failure.BadRequestFromString(fmt.Sprintf("room type allows at most %d guests", roomType.MaxGuests)) // nolint:wrapcheck
	}

	return nil
}
