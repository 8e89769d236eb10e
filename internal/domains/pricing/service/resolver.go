package service

import (
	"context"
	"fmt"
	"hotel/internal/domains/pricing/model"
	"hotel/internal/domains/pricing/model/dto"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"time"
)

// resolver picks the row that prices a given night. With dynamic set, the
// night's demand surcharge is added before any discount.
type resolver struct {
	base      *model.RoomPrice
	overrides []model.RoomPrice
	dynamic   bool
}

func newResolver(rows []model.RoomPrice, dynamic bool) resolver {
	r := resolver{dynamic: dynamic}

	for i := range rows {
		if rows[i].IsDefault() {
			if r.base == nil {
				r.base = &rows[i]
			}

			continue
		}

		r.overrides = append(r.overrides, rows[i])
	}

	return r
}

// match returns the override covering date. Overlaps are rejected on write;
// for legacy data the narrowest window wins, then the most recent row.
func (r resolver) match(date time.Time) *model.RoomPrice {
	var best *model.RoomPrice

	for i := range r.overrides {
		row := &r.overrides[i]
		if !row.Covers(date) {
			continue
		}

		switch {
		case best == nil:
			best = row
		case row.WindowDays() < best.WindowDays():
			best = row
		case row.WindowDays() == best.WindowDays() && row.CreatedAt.After(best.CreatedAt):
			best = row
		}
	}

	return best
}

func (r resolver) at(date time.Time) (model.Quote, error) {
	date = daterange.Truncate(date)

	row := r.match(date)
	if row == nil {
		row = r.base
	}

	if row == nil {
		return model.Quote{}, failure.NotFound(fmt.Sprintf("price not configured for %s", daterange.Format(date))) // nolint:wrapcheck
	}

	basic := row.BasicPrice
	if basic == nil && r.base != nil {
		basic = r.base.BasicPrice
	}

	quote := model.Quote{
		Date:     date,
		Discount: row.DiscountRate(),
		Event:    row.Event,
		PriceID:  row.ID,
	}

	if r.dynamic {
		quote.Surcharge = model.SurchargeRate(date)
	}

	switch {
	case row.SpecialPrice != nil:
		quote.Special = true
		quote.Price = model.Surcharged(*row.SpecialPrice, quote.Surcharge)
		quote.BasePrice = quote.Price

		if basic != nil {
			quote.BasePrice = model.Surcharged(*basic, quote.Surcharge)
		}
	case basic != nil:
		quote.BasePrice = model.Surcharged(*basic, quote.Surcharge)
		quote.Price = model.Round(float64(quote.BasePrice) * (1 - quote.Discount))
	default:
		return model.Quote{}, failure.NotFound(fmt.Sprintf("price not configured for %s", daterange.Format(date))) // nolint:wrapcheck
	}

	return quote, nil
}

// checkCandidate validates a row about to be written against the other rows
// of the same room type.
func checkCandidate(rows []model.RoomPrice, candidate model.RoomPrice) error {
	if d := candidate.DiscountRate(); d < 0 || d > 1 {
		return failure.BadRequestFromString("discount must be between 0 and 1") // nolint:wrapcheck
	}

	if (candidate.StartDate == nil) != (candidate.EndDate == nil) {
		return failure.BadRequestFromString("start_date and end_date must be set together") // nolint:wrapcheck
	}

	if candidate.IsDefault() {
		if candidate.BasicPrice == nil {
			return failure.BadRequestFromString("default price requires basic_price") // nolint:wrapcheck
		}

		for _, row := range rows {
			if row.IsDefault() && row.ID != candidate.ID {
				return failure.Conflict("room type already has a default price") // nolint:wrapcheck
			}
		}

		return nil
	}

	if candidate.EndDate.Before(*candidate.StartDate) {
		return failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	if candidate.BasicPrice == nil && candidate.SpecialPrice == nil && candidate.Discount == nil {
		return failure.BadRequestFromString("override requires basic_price, special_price or discount") // nolint:wrapcheck
	}

	for _, row := range rows {
		if row.ID == candidate.ID || row.IsDefault() {
			continue
		}

		if row.OverlapsWindow(*candidate.StartDate, *candidate.EndDate) {
			return failure.Conflict(fmt.Sprintf("price window overlaps existing override %s to %s", // nolint:wrapcheck
				daterange.Format(*row.StartDate), daterange.Format(*row.EndDate)))
		}
	}

	return nil
}

func (s *serviceImpl) PriceForDate(ctx context.Context, roomTypeID string, date time.Time) (res model.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PriceForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.rows(ctx, roomTypeID)
	if err != nil {
		return res, err
	}

	return s.resolver(rows).at(date)
}

func (s *serviceImpl) GetPriceForDate(ctx context.Context, roomTypeID, date string) (res dto.PriceForDateResponse, err error) {
	day := daterange.Today()

	if date != constant.Empty {
		if day, err = daterange.Parse(date); err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	quote, err := s.PriceForDate(ctx, roomTypeID, day)
	if err != nil {
		return res, err
	}

	res.RoomTypeID = roomTypeID
	res.FromModel(quote)

	return res, nil
}
