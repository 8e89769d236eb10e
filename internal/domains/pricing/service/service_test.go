package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/coupon"
	couponMocks "hotel/infras/coupon/mocks"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	txMocks "hotel/infras/postgres/mocks"
	pricingMocks "hotel/internal/domains/pricing/mocks"
	"hotel/internal/domains/pricing/model"
	"hotel/internal/domains/pricing/model/dto"
	"hotel/internal/domains/pricing/service"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
)

const (
	roomTypeID = "2f4b9c6e-8d1a-4e3b-a5c7-9f0e1d2c3b4a"
	ownerID    = "owner-1"
)

type fixture struct {
	repo      *pricingMocks.MockRoomPrice
	roomTypes *roomTypeMocks.MockRoomType
	coupon    *couponMocks.MockClient
	tx        *txMocks.MockTransactor
	cache     *cacheMocks.MockRedisCache
	svc       service.Pricing
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      pricingMocks.NewMockRoomPrice(ctrl),
		roomTypes: roomTypeMocks.NewMockRoomType(ctrl),
		coupon:    couponMocks.NewMockClient(ctrl),
		tx:        txMocks.NewMockTransactor(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.roomTypes, f.coupon, f.tx, f.cache, &config.Config{}, mocks.NewOtel())

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *sql.TxOptions, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		}).
		AnyTimes()

	return f
}

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }
func day(value string) time.Time {
	d, _ := daterange.Parse(value)

	return d
}

func dayPtr(value string) *time.Time {
	d := day(value)

	return &d
}

func defaultRow(basic int64, discount *float64) model.RoomPrice {
	return model.RoomPrice{ID: "default", RoomTypeID: roomTypeID, BasicPrice: i64(basic), Discount: discount}
}

func override(id, start, end string) model.RoomPrice {
	return model.RoomPrice{ID: id, RoomTypeID: roomTypeID, StartDate: dayPtr(start), EndDate: dayPtr(end)}
}

func ownerContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, ownerID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleHotelManager)
}

func TestPricingService_PriceForDate(t *testing.T) {
	special := override("special", "2030-12-24", "2030-12-26")
	special.SpecialPrice = i64(1500)
	special.Event = str("Christmas")

	discounted := override("discounted", "2030-07-01", "2030-07-31")
	discounted.Discount = f64(0.25)

	wide := override("wide", "2030-03-01", "2030-03-31")
	wide.BasicPrice = i64(2000)

	narrow := override("narrow", "2030-03-10", "2030-03-12")
	narrow.BasicPrice = i64(3000)

	older := override("older", "2030-05-01", "2030-05-05")
	older.BasicPrice = i64(4000)
	older.Metadata = gModel.Metadata{CreatedAt: time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)}

	newer := override("newer", "2030-05-01", "2030-05-05")
	newer.BasicPrice = i64(5000)
	newer.Metadata = gModel.Metadata{CreatedAt: time.Date(2029, 6, 1, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name        string
		rows        []model.RoomPrice
		date        string
		wantCode    int
		wantPrice   int64
		wantBase    int64
		wantSpecial bool
		wantEvent   *string
	}{
		{
			name:      "default row with discount",
			rows:      []model.RoomPrice{defaultRow(1000, f64(0.1))},
			date:      "2030-01-15",
			wantPrice: 900,
			wantBase:  1000,
		},
		{
			name:        "special price on the last day of the window",
			rows:        []model.RoomPrice{defaultRow(1000, nil), special},
			date:        "2030-12-26",
			wantPrice:   1500,
			wantBase:    1000,
			wantSpecial: true,
			wantEvent:   str("Christmas"),
		},
		{
			name:      "day after the window uses the default",
			rows:      []model.RoomPrice{defaultRow(1000, nil), special},
			date:      "2030-12-27",
			wantPrice: 1000,
			wantBase:  1000,
		},
		{
			name:      "override inherits the default basic price",
			rows:      []model.RoomPrice{defaultRow(1000, nil), discounted},
			date:      "2030-07-01",
			wantPrice: 750,
			wantBase:  1000,
		},
		{
			name:      "rounds half away from zero",
			rows:      []model.RoomPrice{defaultRow(999, f64(0.5))},
			date:      "2030-02-01",
			wantPrice: 500,
			wantBase:  999,
		},
		{
			name:      "narrowest overlapping window wins",
			rows:      []model.RoomPrice{wide, defaultRow(1000, nil), narrow},
			date:      "2030-03-11",
			wantPrice: 3000,
			wantBase:  3000,
		},
		{
			name:      "latest row wins a tie",
			rows:      []model.RoomPrice{newer, older, defaultRow(1000, nil)},
			date:      "2030-05-03",
			wantPrice: 5000,
			wantBase:  5000,
		},
		{
			name:     "no rows",
			date:     "2030-01-01",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "override only and date outside it",
			rows:     []model.RoomPrice{special},
			date:     "2030-01-01",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.rows, nil)

			got, err := f.svc.PriceForDate(context.Background(), roomTypeID, day(tt.date))

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantBase, got.BasePrice)
			assert.Equal(t, tt.wantSpecial, got.Special)
			assert.Equal(t, tt.wantEvent, got.Event)
		})
	}
}

func TestPricingService_PriceForDate_EventOverride(t *testing.T) {
	xmas := override("xmas", "2030-12-20", "2030-12-31")
	xmas.SpecialPrice = i64(800_000)
	xmas.Event = str("Xmas")

	rows := []model.RoomPrice{defaultRow(1_000_000, nil), xmas}

	f := newFixture(t)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil).Times(2)

	inside, err := f.svc.PriceForDate(context.Background(), roomTypeID, day("2030-12-25"))
	require.NoError(t, err)
	assert.Equal(t, int64(800_000), inside.Price)
	assert.Equal(t, str("Xmas"), inside.Event)

	outside, err := f.svc.PriceForDate(context.Background(), roomTypeID, day("2030-12-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), outside.Price)
	assert.Nil(t, outside.Event)
}

func TestPricingService_CalculatePrice_DefaultOnly(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1_000_000, nil)}, nil)

	got, err := f.svc.CalculatePrice(context.Background(), dto.CalculatePriceRequest{
		RoomTypeID: roomTypeID,
		CheckIn:    "2030-06-01",
		CheckOut:   "2030-06-04",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3_000_000), got.TotalPrice)
	require.Len(t, got.Breakdown, 3)

	for _, line := range got.Breakdown {
		assert.Equal(t, int64(0), line.DiscountAmount)
		assert.Equal(t, int64(1_000_000), line.FinalPrice)
	}
}

func TestPricingService_CalculatePrice(t *testing.T) {
	promo := override("promo", "2030-04-02", "2030-04-02")
	promo.Discount = f64(0.2)
	promo.Event = str("Spring")

	rows := []model.RoomPrice{defaultRow(1000, nil), promo}

	tests := []struct {
		name         string
		req          dto.CalculatePriceRequest
		setupMock    func(f fixture)
		wantCode     int
		wantSubtotal int64
		wantTotal    int64
		wantDiscount int64
	}{
		{
			name:         "mixes default and override nights",
			req:          dto.CalculatePriceRequest{RoomTypeID: roomTypeID, CheckIn: "2030-04-01", CheckOut: "2030-04-04"},
			wantSubtotal: 2800,
			wantTotal:    2800,
		},
		{
			name: "valid promo code",
			req:  dto.CalculatePriceRequest{RoomTypeID: roomTypeID, CheckIn: "2030-04-01", CheckOut: "2030-04-04", PromoCode: "SAVE"},
			setupMock: func(f fixture) {
				f.coupon.EXPECT().Validate(gomock.Any(), "SAVE", int64(2800)).Return(coupon.Result{Valid: true, Discount: 300}, nil)
			},
			wantSubtotal: 2800,
			wantDiscount: 300,
			wantTotal:    2500,
		},
		{
			name: "invalid promo code",
			req:  dto.CalculatePriceRequest{RoomTypeID: roomTypeID, CheckIn: "2030-04-01", CheckOut: "2030-04-04", PromoCode: "OLD"},
			setupMock: func(f fixture) {
				f.coupon.EXPECT().Validate(gomock.Any(), "OLD", gomock.Any()).Return(coupon.Result{}, failure.BadRequestFromString("coupon expired"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "coupon service down",
			req:  dto.CalculatePriceRequest{RoomTypeID: roomTypeID, CheckIn: "2030-04-01", CheckOut: "2030-04-04", PromoCode: "SAVE"},
			setupMock: func(f fixture) {
				f.coupon.EXPECT().Validate(gomock.Any(), "SAVE", gomock.Any()).Return(coupon.Result{}, failure.Transient("coupon service is unavailable"))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			got, err := f.svc.CalculatePrice(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 3, got.Nights)
			assert.Equal(t, tt.wantSubtotal, got.Subtotal)
			assert.Equal(t, tt.wantDiscount, got.TotalDiscount)
			assert.Equal(t, tt.wantTotal, got.TotalPrice)
			require.Len(t, got.Breakdown, 3)
			assert.Equal(t, dto.BreakdownLine{
				Date: "2030-04-02", BasePrice: 1000, Event: str("Spring"), DiscountRate: 0.2, DiscountAmount: 200, FinalPrice: 800,
			}, got.Breakdown[1])
		})
	}
}

func TestPricingService_CalculatePrice_DynamicPricing(t *testing.T) {
	promo := override("promo", "2030-04-05", "2030-04-05")
	promo.Discount = f64(0.2)

	rows := []model.RoomPrice{defaultRow(1000, nil), promo}
	req := dto.CalculatePriceRequest{RoomTypeID: roomTypeID, CheckIn: "2030-04-03", CheckOut: "2030-04-07"}

	tests := []struct {
		name      string
		enabled   bool
		wantTotal int64
		wantFri   dto.BreakdownLine
	}{
		{
			name:      "disabled keeps stored prices",
			wantTotal: 3800,
			wantFri:   dto.BreakdownLine{Date: "2030-04-05", BasePrice: 1000, DiscountRate: 0.2, DiscountAmount: 200, FinalPrice: 800},
		},
		{
			name:      "enabled adds the weekend surcharge before the discount",
			enabled:   true,
			wantTotal: 3980,
			wantFri: dto.BreakdownLine{
				Date: "2030-04-05", BasePrice: 1100, DiscountRate: 0.2, DiscountAmount: 220, SurchargeRate: 0.1, FinalPrice: 880,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			cfg := &config.Config{}
			cfg.Pricing.DynamicEnabled = tt.enabled

			repo := pricingMocks.NewMockRoomPrice(ctrl)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
			redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)

			svc := service.New(repo, roomTypeMocks.NewMockRoomType(ctrl), couponMocks.NewMockClient(ctrl),
				txMocks.NewMockTransactor(ctrl), redisCache, cfg, mocks.NewOtel())

			got, err := svc.CalculatePrice(context.Background(), req)

			require.NoError(t, err)
			require.Len(t, got.Breakdown, 4)
			assert.Equal(t, tt.wantTotal, got.TotalPrice)
			assert.Equal(t, tt.wantFri, got.Breakdown[2])
		})
	}
}

func TestPricingService_CalculatePrice_Validation(t *testing.T) {
	t.Run("zero nights", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CalculatePrice(context.Background(), dto.CalculatePriceRequest{
			RoomTypeID: roomTypeID, CheckIn: "2030-04-01", CheckOut: "2030-04-01",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("too many guests", func(t *testing.T) {
		f := newFixture(t)
		guests := 5

		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{ID: roomTypeID, MaxGuests: 2}, nil)

		_, err := f.svc.CalculatePrice(context.Background(), dto.CalculatePriceRequest{
			RoomTypeID: roomTypeID, CheckIn: "2030-04-01", CheckOut: "2030-04-03", Guests: &guests,
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestPricingService_CheckoutTotal(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1005, nil)}, nil)

	got, err := f.svc.CheckoutTotal(context.Background(), dto.CalculatePriceRequest{
		RoomTypeID: roomTypeID, CheckIn: "2030-04-01", CheckOut: "2030-04-02",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1005), got.Subtotal)
	assert.Equal(t, int64(101), got.Tax)
	assert.Equal(t, int64(1106), got.Total)
}

func TestPricingService_CheckoutTotal_IgnoresPromo(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1_000_000, nil)}, nil)

	got, err := f.svc.CheckoutTotal(context.Background(), dto.CalculatePriceRequest{
		RoomTypeID: roomTypeID, CheckIn: "2030-06-01", CheckOut: "2030-06-04", PromoCode: "HALFMIL",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, got.Nights)
	assert.Equal(t, int64(3_000_000), got.Subtotal)
	assert.Equal(t, int64(300_000), got.Tax)
	assert.Equal(t, int64(3_300_000), got.Total)
}

func TestPricingService_Quote(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1250, nil)}, nil)

	got, err := f.svc.Quote(context.Background(), roomTypeID, daterange.Range{Start: day("2030-04-01"), End: day("2030-04-03")})

	require.NoError(t, err)
	assert.Equal(t, model.Checkout{Nights: 2, Subtotal: 2500, Tax: 250, Total: 2750}, got)
}

func TestPricingService_Quote_ReadsThroughToDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := pricingMocks.NewMockRoomPrice(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(repo, roomTypeMocks.NewMockRoomType(ctrl), couponMocks.NewMockClient(ctrl),
		txMocks.NewMockTransactor(ctrl), redisCache, &config.Config{}, mocks.NewOtel())

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1000, nil)}, nil)

	got, err := svc.Quote(context.Background(), roomTypeID, daterange.Range{Start: day("2030-04-01"), End: day("2030-04-02")})

	require.NoError(t, err)
	assert.Equal(t, int64(1100), got.Total)
}

func TestPricingService_ListPrices(t *testing.T) {
	t.Run("owner reads without locking", func(t *testing.T) {
		f := newFixture(t)
		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{ID: roomTypeID, HotelOwnerID: ownerID}, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1000, nil)}, nil)

		got, err := f.svc.ListPrices(ownerContext(), roomTypeID)

		require.NoError(t, err)
		assert.Len(t, got.Prices, 1)
	})

	t.Run("unknown room type", func(t *testing.T) {
		f := newFixture(t)
		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{}, nil)

		_, err := f.svc.ListPrices(ownerContext(), roomTypeID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPricingService_PriceRange(t *testing.T) {
	weekend := override("weekend", "2030-04-06", "2030-04-07")
	weekend.SpecialPrice = i64(1600)

	f := newFixture(t)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1000, nil), weekend}, nil)

	got, err := f.svc.GetPriceRange(context.Background(), roomTypeID, "2030-04-05", "2030-04-07")

	require.NoError(t, err)
	require.Len(t, got.Days, 3)
	assert.Equal(t, int64(1000), got.Min)
	assert.Equal(t, int64(1600), got.Max)
	assert.Equal(t, int64(1400), got.Average)
	assert.Equal(t, "2030-04-07", got.End)
}

func TestPricingService_CreatePrice(t *testing.T) {
	existing := override("existing", "2030-06-10", "2030-06-20")
	existing.SpecialPrice = i64(900)

	owned := roomTypeModel.RoomType{ID: roomTypeID, HotelOwnerID: ownerID}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreatePriceRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "new override next to an existing one",
			ctx:  ownerContext(),
			req:  dto.CreatePriceRequest{Discount: f64(0.1), StartDate: str("2030-06-21"), EndDate: str("2030-06-30")},
			setupMock: func(f fixture) {
				f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1000, nil), existing}, nil)
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, price model.RoomPrice) error {
						assert.Equal(t, roomTypeID, price.RoomTypeID)
						assert.Equal(t, ownerID, price.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "overlapping override",
			ctx:  ownerContext(),
			req:  dto.CreatePriceRequest{Discount: f64(0.1), StartDate: str("2030-06-20"), EndDate: str("2030-06-30")},
			setupMock: func(f fixture) {
				f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{existing}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "second default row",
			ctx:  ownerContext(),
			req:  dto.CreatePriceRequest{BasicPrice: i64(1200)},
			setupMock: func(f fixture) {
				f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{defaultRow(1000, nil)}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "discount above one",
			ctx:  ownerContext(),
			req:  dto.CreatePriceRequest{Discount: f64(1.5), StartDate: str("2030-08-01"), EndDate: str("2030-08-02")},
			setupMock: func(f fixture) {
				f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not the owner",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "someone-else"),
			req:  dto.CreatePriceRequest{BasicPrice: i64(1200)},
			setupMock: func(f fixture) {
				f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(owned, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "malformed window",
			ctx:      ownerContext(),
			req:      dto.CreatePriceRequest{Discount: f64(0.1), StartDate: str("2030-13-01"), EndDate: str("2030-06-30")},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			got, err := f.svc.CreatePrice(tt.ctx, roomTypeID, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.False(t, got.IsDefault)
		})
	}
}

func TestPricingService_UpdatePrice(t *testing.T) {
	existing := override("existing", "2030-06-10", "2030-06-20")
	existing.SpecialPrice = i64(900)

	t.Run("unknown price", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomPrice{}, nil)

		_, err := f.svc.UpdatePrice(ownerContext(), "missing", dto.UpdatePriceRequest{SpecialPrice: i64(1000)})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("moving the window onto itself is allowed", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomTypeModel.RoomType{ID: roomTypeID, HotelOwnerID: ownerID}, nil)
		f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomPrice{existing}, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.svc.UpdatePrice(ownerContext(), existing.ID, dto.UpdatePriceRequest{
			SpecialPrice: i64(1100), StartDate: str("2030-06-12"), EndDate: str("2030-06-22"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1100), *got.SpecialPrice)
		assert.Equal(t, "2030-06-22", *got.EndDate)
	})
}
