package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	txMocks "hotel/infras/postgres/mocks"
	"hotel/internal/domains/hotel/mocks"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/service"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	roomLogMocks "hotel/internal/domains/roomlog/mocks"
	roomLogModel "hotel/internal/domains/roomlog/model"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

const (
	hotelID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	ownerID = "owner-1"
)

type fixture struct {
	hotels    *mocks.MockHotel
	roomTypes *roomTypeMocks.MockRoomType
	rooms     *roomMocks.MockRoom
	roomLogs  *roomLogMocks.MockRoomLog
	cache     *cacheMocks.MockRedisCache
	svc       service.Service
}

func newFixture(t *testing.T) fixture {
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
		hotels:    mocks.NewMockHotel(ctrl),
		roomTypes: roomTypeMocks.NewMockRoomType(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		roomLogs:  roomLogMocks.NewMockRoomLog(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.hotels, f.roomTypes, f.rooms, f.roomLogs, tx, f.cache,
		kafkaMocks.NewMockClient(ctrl), &config.Config{}, otelMocks.NewOtel())

	return f
}

func as(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func hotel(status model.Status) model.Hotel {
	return model.Hotel{ID: hotelID, OwnerID: ownerID, Name: "Seaside", Status: status}
}

func roomTypes() []roomTypeModel.RoomType {
	return []roomTypeModel.RoomType{
		{ID: "rt-1", HotelID: hotelID, Quantity: 0},
		{ID: "rt-2", HotelID: hotelID, Quantity: 0},
	}
}

func TestDisable(t *testing.T) {
	f := newFixture(t)

	f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel(model.StatusActive), nil)

	gomock.InOrder(
		f.hotels.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotel(model.StatusActive), nil),
		f.hotels.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, changes map[string]any, _ any) error {
				assert.Equal(t, model.StatusDisabled, changes[model.FieldStatus])

				return nil
			}),
		f.roomTypes.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, changes map[string]any, _ any) error {
				assert.Equal(t, false, changes[roomTypeModel.FieldAvailability])

				return nil
			}),
		f.rooms.EXPECT().SetStatusByHotelTx(gomock.Any(), gomock.Any(), hotelID, roomModel.StatusDisabled, gomock.Nil(), ownerID).Return(int64(7), nil),
		f.roomTypes.EXPECT().RecalculateQuantityTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.roomTypes.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(roomTypes(), nil),
	)

	f.roomLogs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, entry roomLogModel.RoomLog) error {
			assert.Equal(t, roomLogModel.EventHotelCascade, entry.EventType)
			assert.Nil(t, entry.RoomID)

			return nil
		}).
		Times(2)

	res, err := f.svc.Disable(as(ownerID, constant.RoleHotelManager), hotelID)

	require.NoError(t, err)
	assert.Equal(t, "disabled", res.Status)
	assert.Equal(t, 2, res.RoomTypes)
	assert.Equal(t, int64(7), res.RoomsAffected)
}

func TestEnable_KeepsMaintenance(t *testing.T) {
	f := newFixture(t)

	f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel(model.StatusDisabled), nil)
	f.hotels.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotel(model.StatusDisabled), nil)
	f.hotels.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.roomTypes.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, changes map[string]any, _ any) error {
			assert.Equal(t, true, changes[roomTypeModel.FieldAvailability])

			return nil
		})
	f.rooms.EXPECT().
		SetStatusByHotelTx(gomock.Any(), gomock.Any(), hotelID, roomModel.StatusOperational, []roomModel.Status{roomModel.StatusDisabled}, "admin-1").
		Return(int64(5), nil)
	f.roomTypes.EXPECT().RecalculateQuantityTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.roomTypes.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(roomTypes()[:1], nil)
	f.roomLogs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Enable(as("admin-1", constant.RoleAdmin), hotelID)

	require.NoError(t, err)
	assert.Equal(t, "active", res.Status)
	assert.Equal(t, int64(5), res.RoomsAffected)
}

func TestCascade_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		hotel    model.Hotel
		wantCode int
		wantMsg  string
	}{
		{
			name:     "unknown hotel",
			ctx:      as(ownerID, constant.RoleHotelManager),
			hotel:    model.Hotel{},
			wantCode: http.StatusNotFound,
			wantMsg:  service.ErrHotelNotFound,
		},
		{
			name:     "another manager",
			ctx:      as("owner-2", constant.RoleHotelManager),
			hotel:    hotel(model.StatusActive),
			wantCode: http.StatusForbidden,
			wantMsg:  service.ErrNotOwner,
		},
		{
			name:     "customer",
			ctx:      as("guest-1", constant.RoleCustomer),
			hotel:    hotel(model.StatusActive),
			wantCode: http.StatusForbidden,
			wantMsg:  service.ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.hotel, nil)

			_, err := f.svc.Disable(tt.ctx, hotelID)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCascade_RollsBack(t *testing.T) {
	f := newFixture(t)

	f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel(model.StatusActive), nil)
	f.hotels.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotel(model.StatusActive), nil)
	f.hotels.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.roomTypes.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.rooms.EXPECT().SetStatusByHotelTx(gomock.Any(), gomock.Any(), hotelID, roomModel.StatusDisabled, gomock.Nil(), ownerID).
		Return(int64(0), errors.New("deadlock"))

	_, err := f.svc.Disable(as(ownerID, constant.RoleHotelManager), hotelID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
}

func TestGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel(model.StatusActive), nil)

		res, err := f.svc.Get(context.Background(), hotelID)

		require.NoError(t, err)
		assert.Equal(t, "Seaside", res.Name)
		assert.Equal(t, "active", res.Status)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := f.svc.Get(context.Background(), hotelID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomTypes(t *testing.T) {
	f := newFixture(t)

	f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel(model.StatusActive), nil)
	f.roomTypes.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.roomTypes.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomTypes(), nil)

	res, err := f.svc.RoomTypes(context.Background(), hotelID, gDto.QueryParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	require.Len(t, res.RoomTypes, 2)
	assert.Equal(t, "rt-1", res.RoomTypes[0].ID)
}
