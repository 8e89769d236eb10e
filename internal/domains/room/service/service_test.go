package service_test

import (
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	txMocks "hotel/infras/postgres/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
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
	roomID     = "7c1e2d3f-4a5b-4c6d-8e7f-901a2b3c4d5e"
	roomTypeID = "5b0f8a5e-2f4e-4a8e-9a37-6d1c1f1b9a01"
	ownerID    = "owner-1"
)

type fixture struct {
	rooms     *mocks.MockRoom
	roomTypes *roomTypeMocks.MockRoomType
	roomLogs  *roomLogMocks.MockRoomLog
	s3        *s3Mocks.MockS3
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

	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f := fixture{
		rooms:     mocks.NewMockRoom(ctrl),
		roomTypes: roomTypeMocks.NewMockRoomType(ctrl),
		roomLogs:  roomLogMocks.NewMockRoomLog(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.rooms, f.roomTypes, f.roomLogs, tx, &config.Config{}, redisCache, otelMocks.NewOtel(), f.s3)

	return f
}

func as(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func roomType() roomTypeModel.RoomType {
	return roomTypeModel.RoomType{ID: roomTypeID, HotelOwnerID: ownerID, Quantity: 3}
}

func room(status model.Status) model.Room {
	return model.Room{ID: roomID, RoomTypeID: roomTypeID, Name: "101", Status: status}
}

func status(s model.Status) *int16 {
	v := int16(s)

	return &v
}

func TestCreate(t *testing.T) {
	t.Run("adds the room and recalculates quantity", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomType(), nil)
		f.rooms.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, r model.Room) error {
				assert.Equal(t, model.StatusOperational, r.Status)
				assert.Equal(t, roomTypeID, r.RoomTypeID)

				return nil
			})
		f.roomTypes.EXPECT().RecalculateQuantityTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(as(ownerID, constant.RoleHotelManager), dto.CreateRoomRequest{RoomTypeID: roomTypeID, Name: "101"})

		require.NoError(t, err)
		assert.Equal(t, "operational", res.StatusName)
	})

	t.Run("not the owner", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomType(), nil)

		_, err := f.svc.Create(as("owner-2", constant.RoleHotelManager), dto.CreateRoomRequest{RoomTypeID: roomTypeID, Name: "101"})

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("removes the uploaded image when the insert fails", func(t *testing.T) {
		f := newFixture(t)

		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/room/a.png", nil)
		f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomType(), nil)
		f.rooms.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any()).Return(nil)

		_, err := f.svc.Create(as(ownerID, constant.RoleHotelManager), dto.CreateRoomRequest{
			RoomTypeID: roomTypeID,
			Name:       "101",
			Image:      &multipart.FileHeader{Filename: "a.png"},
		})

		require.Error(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		req      dto.UpdateRoomStatusRequest
		setup    func(f fixture)
		want     model.Status
		wantCode int
	}{
		{
			name: "operational to maintenance",
			ctx:  as(ownerID, constant.RoleHotelManager),
			req:  dto.UpdateRoomStatusRequest{Status: status(model.StatusMaintenance)},
			setup: func(f fixture) {
				f.rooms.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(model.StatusOperational), nil)
				f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomType(), nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(model.StatusOperational), nil)
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, changes map[string]any, _ any) error {
						assert.Equal(t, model.StatusMaintenance, changes[model.FieldStatus])

						return nil
					})
				f.roomTypes.EXPECT().RecalculateQuantityTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.roomLogs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, entry roomLogModel.RoomLog) error {
						assert.Equal(t, roomLogModel.EventRoomStatusChanged, entry.EventType)
						assert.Contains(t, entry.ExtraContext, "maintenance")

						return nil
					})
			},
			want: model.StatusMaintenance,
		},
		{
			name: "disable with estimate",
			ctx:  as("admin-1", constant.RoleAdmin),
			req: func() dto.UpdateRoomStatusRequest {
				date := "2030-01-15"

				return dto.UpdateRoomStatusRequest{Status: status(model.StatusDisabled), EstimatedAvailableAt: &date}
			}(),
			setup: func(f fixture) {
				f.rooms.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(model.StatusOperational), nil)
				f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomType(), nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(model.StatusOperational), nil)
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.roomTypes.EXPECT().RecalculateQuantityTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.roomLogs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want: model.StatusDisabled,
		},
		{
			name:     "unknown status",
			ctx:      as(ownerID, constant.RoleHotelManager),
			req:      dto.UpdateRoomStatusRequest{Status: status(model.Status(7))},
			setup:    func(_ fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing status",
			ctx:      as(ownerID, constant.RoleHotelManager),
			req:      dto.UpdateRoomStatusRequest{},
			setup:    func(_ fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			ctx:  as(ownerID, constant.RoleHotelManager),
			req:  dto.UpdateRoomStatusRequest{Status: status(model.StatusDisabled)},
			setup: func(f fixture) {
				f.rooms.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "not the owner",
			ctx:  as("owner-2", constant.RoleHotelManager),
			req:  dto.UpdateRoomStatusRequest{Status: status(model.StatusDisabled)},
			setup: func(f fixture) {
				f.rooms.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(model.StatusOperational), nil)
				f.roomTypes.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomType(), nil)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.UpdateStatus(tt.ctx, roomID, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int16(tt.want), res.Status)
		})
	}
}

func TestGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusMaintenance), nil)

		res, err := f.svc.Get(context.Background(), roomID)

		require.NoError(t, err)
		assert.Equal(t, "maintenance", res.StatusName)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), roomID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGetByRoomType(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{room(model.StatusOperational)}, nil)

	res, err := f.svc.GetByRoomType(context.Background(), roomTypeID, gDto.QueryParams{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Rooms, 1)
}

func TestUpdate(t *testing.T) {
	t.Run("replaces the image", func(t *testing.T) {
		f := newFixture(t)

		current := room(model.StatusOperational)
		current.Image = "https://cdn.example.com/room/old.png"

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType(), nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/room/new.png", nil)
		f.rooms.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, changes map[string]any, _ any) error {
				assert.Equal(t, "https://cdn.example.com/room/new.png", changes[model.FieldImage])
				assert.Equal(t, "102", changes[model.FieldName])

				return nil
			})
		f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), current.Image).Return("old.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, "old.png").Return(nil)

		err := f.svc.Update(as(ownerID, constant.RoleHotelManager), dto.UpdateRoomRequest{
			Name:  "102",
			Image: &multipart.FileHeader{Filename: "new.png"},
		}, roomID)

		require.NoError(t, err)
	})

	t.Run("not the owner", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusOperational), nil)
		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType(), nil)

		err := f.svc.Update(as("owner-2", constant.RoleHotelManager), dto.UpdateRoomRequest{Name: "102"}, roomID)

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}
