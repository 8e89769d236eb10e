package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	txMocks "hotel/infras/postgres/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	hotelMocks "hotel/internal/domains/hotel/mocks"
	hotelModel "hotel/internal/domains/hotel/model"
	inventoryMocks "hotel/internal/domains/inventory/mocks"
	inventoryDto "hotel/internal/domains/inventory/model/dto"
	pricingMocks "hotel/internal/domains/pricing/mocks"
	pricingModel "hotel/internal/domains/pricing/model"
	pricingDto "hotel/internal/domains/pricing/model/dto"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	roomLogMocks "hotel/internal/domains/roomlog/mocks"
	roomLogModel "hotel/internal/domains/roomlog/model"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/sync/model/dto"
	"hotel/internal/domains/sync/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

const (
	hotelA = "11111111-1111-4111-8111-111111111111"
	hotelB = "22222222-2222-4222-8222-222222222222"
	hotelC = "33333333-3333-4333-8333-333333333333"
)

type fixture struct {
	hotels    *hotelMocks.MockHotel
	roomTypes *roomTypeMocks.MockRoomType
	rooms     *roomMocks.MockRoom
	prices    *pricingMocks.MockRoomPrice
	roomLogs  *roomLogMocks.MockRoomLog
	inventory *inventoryMocks.MockInventory
	pricing   *pricingMocks.MockPricing
	s3        *s3Mocks.MockS3
	cache     *cacheMocks.MockRedisCache
	cfg       *config.Config
	svc       service.Service
}

func newFixture(t *testing.T, configure ...func(cfg *config.Config)) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	tx := txMocks.NewMockTransactor(ctrl)
	tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *sql.TxOptions, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		}).
		AnyTimes()

	f := fixture{
		hotels:    hotelMocks.NewMockHotel(ctrl),
		roomTypes: roomTypeMocks.NewMockRoomType(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		prices:    pricingMocks.NewMockRoomPrice(ctrl),
		roomLogs:  roomLogMocks.NewMockRoomLog(ctrl),
		inventory: inventoryMocks.NewMockInventory(ctrl),
		pricing:   pricingMocks.NewMockPricing(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		cfg:       &config.Config{},
	}

	for _, fn := range configure {
		fn(f.cfg)
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.hotels, f.roomTypes, f.rooms, f.prices, f.roomLogs, f.inventory, f.pricing,
		tx, f.s3, f.cache, kafkaMocks.NewMockClient(ctrl), f.cfg, otelMocks.NewOtel())

	return f
}

// idOf pulls the id out of a FilterByID group.
func idOf(filter gDto.FilterGroup) string {
	id, _ := filter.Filters[0].(gDto.Filter).Value.(string)

	return id
}

func (f fixture) expectHotels(ids ...string) {
	known := map[string]bool{}
	for _, id := range ids {
		known[id] = true
	}

	f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (hotelModel.Hotel, error) {
			id := idOf(filter)
			if !known[id] {
				return hotelModel.Hotel{}, nil
			}

			return hotelModel.Hotel{ID: id, Name: "Hotel " + id[:1], Status: hotelModel.StatusActive}, nil
		}).
		AnyTimes()
}

func (f fixture) expectRoomTypes() {
	f.roomTypes.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]roomTypeModel.RoomType, error) {
			hotelID := idOf(filter)

			return []roomTypeModel.RoomType{{ID: "rt-" + hotelID[:1], HotelID: hotelID, Name: "Deluxe", Quantity: 3}}, nil
		}).
		AnyTimes()
}

func calendar() []inventoryDto.CalendarDay {
	return []inventoryDto.CalendarDay{
		{Date: "2030-01-01", Quantity: 3, Booked: 1, Available: 2},
		{Date: "2030-01-02", Quantity: 3, Available: 3},
	}
}

func priceRange() pricingDto.PriceRangeResponse {
	return pricingDto.PriceRangeResponse{Min: 100, Max: 150, Average: 125}
}

func request(ids ...string) dto.SyncHotelsRequest {
	return dto.SyncHotelsRequest{HotelIDs: ids, StartDate: "2030-01-01", EndDate: "2030-01-02"}
}

func TestSyncMultipleHotels_PartialFailure(t *testing.T) {
	f := newFixture(t)
	f.expectHotels(hotelA, hotelC)
	f.expectRoomTypes()

	f.inventory.EXPECT().CalendarDays(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(calendar(), nil).Times(2)
	f.pricing.EXPECT().PriceRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(priceRange(), nil).Times(2)

	res, err := f.svc.SyncMultipleHotels(context.Background(), request(hotelA, hotelB, hotelC))

	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, hotelA, res[0].HotelID)
	assert.True(t, res[0].Success)
	assert.Nil(t, res[0].Error)
	require.Len(t, res[0].Availability, 1)
	assert.Equal(t, 2, res[0].Availability[0].Days[0].Available)
	assert.True(t, res[0].Pricing[0].Configured)
	assert.Equal(t, int64(125), res[0].Pricing[0].Average)
	assert.NotNil(t, res[0].SyncedAt)

	assert.Equal(t, hotelB, res[1].HotelID)
	assert.False(t, res[1].Success)
	require.NotNil(t, res[1].Error)
	assert.Equal(t, "hotel not found", *res[1].Error)
	assert.Empty(t, res[1].Availability)

	assert.Equal(t, hotelC, res[2].HotelID)
	assert.True(t, res[2].Success)
}

func TestSyncMultipleHotels_DownstreamError(t *testing.T) {
	f := newFixture(t)
	f.expectHotels(hotelA)
	f.expectRoomTypes()

	f.inventory.EXPECT().CalendarDays(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	res, err := f.svc.SyncMultipleHotels(context.Background(), request(hotelA))

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.False(t, res[0].Success)
	assert.Contains(t, *res[0].Error, "connection reset")
}

func TestSyncMultipleHotels_PricingNotConfigured(t *testing.T) {
	f := newFixture(t)
	f.expectHotels(hotelA)
	f.expectRoomTypes()

	f.inventory.EXPECT().CalendarDays(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(calendar(), nil)
	f.pricing.EXPECT().PriceRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pricingDto.PriceRangeResponse{}, failure.NotFound("no default price configured"))

	res, err := f.svc.SyncMultipleHotels(context.Background(), request(hotelA))

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].Success)
	assert.False(t, res[0].Pricing[0].Configured)
	assert.Empty(t, res[0].Pricing[0].Days)
}

func TestSyncMultipleHotels_Export(t *testing.T) {
	f := newFixture(t, func(cfg *config.Config) {
		cfg.Sync.ExportEnabled = true
		cfg.Sync.ExportBucket = "channel-exports"
	})
	f.expectHotels(hotelA)
	f.expectRoomTypes()

	f.inventory.EXPECT().CalendarDays(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(calendar(), nil)
	f.pricing.EXPECT().PriceRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(priceRange(), nil)
	f.s3.EXPECT().
		UploadFileBytes(gomock.Any(), "channel-exports", "sync/"+hotelA, gomock.Any(), "application/json", gomock.Any()).
		Return("https://exports.example.com/sync/"+hotelA+"/snapshot.json", nil)

	res, err := f.svc.SyncMultipleHotels(context.Background(), request(hotelA))

	require.NoError(t, err)
	require.NotNil(t, res[0].ExportURL)
	assert.Contains(t, *res[0].ExportURL, hotelA)
}

func TestSyncMultipleHotels_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  dto.SyncHotelsRequest
	}{
		{"no hotels", request()},
		{"empty hotel id", request(hotelA, "")},
		{"bad date", dto.SyncHotelsRequest{HotelIDs: []string{hotelA}, StartDate: "01/01/2030", EndDate: "2030-01-02"}},
		{"reversed window", dto.SyncHotelsRequest{HotelIDs: []string{hotelA}, StartDate: "2030-01-05", EndDate: "2030-01-02"}},
		{"window too long", dto.SyncHotelsRequest{HotelIDs: []string{hotelA}, StartDate: "2030-01-01", EndDate: "2031-06-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.SyncMultipleHotels(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, failure.IsCode(err, http.StatusBadRequest))
		})
	}
}

func TestSyncStatus(t *testing.T) {
	t.Run("ready with last sync", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels(hotelA)
		f.expectRoomTypes()

		synced := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

		f.prices.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]pricingModel.RoomPrice{{ID: "p-1"}}, nil)
		f.cache.EXPECT().Get(gomock.Any(), "sync:last:"+hotelA, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*time.Time) = synced

				return nil
			})

		res, err := f.svc.SyncStatus(context.Background(), hotelA)

		require.NoError(t, err)
		assert.Equal(t, "ready", res.Status)
		assert.Equal(t, 1, res.RoomTypes)
		assert.True(t, res.PricingConfigured)
		require.NotNil(t, res.LastSync)
		assert.True(t, synced.Equal(*res.LastSync))
	})

	t.Run("incomplete without prices", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels(hotelA)
		f.expectRoomTypes()

		f.prices.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))

		res, err := f.svc.SyncStatus(context.Background(), hotelA)

		require.NoError(t, err)
		assert.Equal(t, "incomplete", res.Status)
		assert.False(t, res.PricingConfigured)
		assert.Nil(t, res.LastSync)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels()

		_, err := f.svc.SyncStatus(context.Background(), hotelB)

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func int16Ptr(v int16) *int16 {
	return &v
}

func TestApplyIncoming_Pricing(t *testing.T) {
	roomType := roomTypeModel.RoomType{ID: "rt-1", HotelID: hotelA}

	t.Run("updates the default row", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels(hotelA)

		f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.prices.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]pricingModel.RoomPrice{{ID: "p-1", RoomTypeID: "rt-1"}}, nil)
		f.prices.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, changes map[string]any, _ any) error {
				assert.Equal(t, int64(900), changes[pricingModel.FieldBasicPrice])

				return nil
			})
		f.pricing.EXPECT().Invalidate(gomock.Any(), "rt-1")

		res, err := f.svc.ApplyIncoming(context.Background(), dto.IncomingSyncRequest{
			HotelID:        hotelA,
			PricingUpdates: []dto.PricingUpdate{{RoomTypeID: "rt-1", Price: 900}},
		})

		require.NoError(t, err)
		assert.True(t, res.Processed)
		assert.Equal(t, 1, res.Records)
	})

	t.Run("creates the default row", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels(hotelA)

		f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.prices.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.prices.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, row pricingModel.RoomPrice) error {
				assert.True(t, row.IsDefault())
				require.NotNil(t, row.BasicPrice)
				assert.Equal(t, int64(700), *row.BasicPrice)
				assert.Equal(t, "channel-manager", row.CreatedBy)

				return nil
			})
		f.pricing.EXPECT().Invalidate(gomock.Any(), "rt-1")

		_, err := f.svc.ApplyIncoming(context.Background(), dto.IncomingSyncRequest{
			HotelID:        hotelA,
			PricingUpdates: []dto.PricingUpdate{{RoomTypeID: "rt-1", Price: 700}},
		})

		require.NoError(t, err)
	})

	t.Run("room type of another hotel", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels(hotelA)

		f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomTypeModel.RoomType{ID: "rt-9", HotelID: hotelB}, nil)

		_, err := f.svc.ApplyIncoming(context.Background(), dto.IncomingSyncRequest{
			HotelID:        hotelA,
			PricingUpdates: []dto.PricingUpdate{{RoomTypeID: "rt-9", Price: 700}},
		})

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestApplyIncoming_RoomStatus(t *testing.T) {
	t.Run("moves a room to maintenance", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels(hotelA)

		estimate := "2030-02-01"

		f.rooms.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", RoomTypeID: "rt-1", Status: roomModel.StatusOperational}, nil)
		f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomTypeModel.RoomType{ID: "rt-1", HotelID: hotelA}, nil)
		f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, changes map[string]any, _ any) error {
				assert.Equal(t, roomModel.StatusMaintenance, changes[roomModel.FieldStatus])
				assert.NotNil(t, changes[roomModel.FieldEstimatedAvailableAt])

				return nil
			})
		f.roomTypes.EXPECT().RecalculateQuantityTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.roomLogs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry roomLogModel.RoomLog) error {
				assert.Equal(t, roomLogModel.EventRoomStatusChanged, entry.EventType)

				return nil
			})

		res, err := f.svc.ApplyIncoming(context.Background(), dto.IncomingSyncRequest{
			HotelID: hotelA,
			AvailabilityUpdates: []dto.RoomStatusUpdate{
				{RoomID: "room-1", Status: int16Ptr(int16(roomModel.StatusMaintenance)), EstimatedAvailableAt: &estimate},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Records)
	})

	t.Run("unsupported status", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels(hotelA)

		_, err := f.svc.ApplyIncoming(context.Background(), dto.IncomingSyncRequest{
			HotelID:             hotelA,
			AvailabilityUpdates: []dto.RoomStatusUpdate{{RoomID: "room-1", Status: int16Ptr(9)}},
		})

		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newFixture(t)
		f.expectHotels()

		_, err := f.svc.ApplyIncoming(context.Background(), dto.IncomingSyncRequest{HotelID: hotelC})

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}
