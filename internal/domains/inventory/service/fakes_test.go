package service_test

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"hotel/infras/postgres"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/inventory/model"
	"hotel/internal/domains/inventory/repository"
	roomLogModel "hotel/internal/domains/roomlog/model"
	roomLogRepo "hotel/internal/domains/roomlog/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
)

// store is an in memory backend. Every transaction holds lock for its whole
// duration, which serializes writers the way the room type row lock does.
type store struct {
	lock     sync.Mutex
	roomType roomTypeModel.RoomType
	holds    map[string]model.Hold
	bookings []bookingModel.Booking
}

func newStore(roomType roomTypeModel.RoomType) *store {
	return &store{roomType: roomType, holds: map[string]model.Hold{}}
}

func (s *store) WithinTransaction(ctx context.Context, _ *sql.TxOptions, fn postgres.TxFunc) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return fn(ctx, nil)
}

func idOf(filter gDto.FilterGroup) string {
	for _, f := range filter.Filters {
		if flt, ok := f.(gDto.Filter); ok {
			id, _ := flt.Value.(string)

			return id
		}
	}

	return ""
}

type fakeHolds struct {
	repository.Hold
	s *store
}

func (f fakeHolds) InsertTx(_ context.Context, _ *sqlx.Tx, hold model.Hold) error {
	f.s.holds[hold.ID] = hold

	return nil
}

func (f fakeHolds) GetForUpdateTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (model.Hold, error) {
	return f.s.holds[idOf(filter)], nil
}

func (f fakeHolds) DeleteTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) error {
	delete(f.s.holds, idOf(filter))

	return nil
}

func (f fakeHolds) GetActiveTx(_ context.Context, _ *sqlx.Tx, roomTypeID string, stay daterange.Range, now time.Time) ([]model.Hold, error) {
	var res []model.Hold

	for _, hold := range f.s.holds {
		if hold.RoomTypeID == roomTypeID && hold.Stay().Overlaps(stay) && !hold.IsExpired(now) {
			res = append(res, hold)
		}
	}

	return res, nil
}

type fakeBookings struct {
	bookingRepo.Booking
	s *store
}

func (f fakeBookings) GetOverlappingTx(_ context.Context, _ *sqlx.Tx, q bookingRepo.OccupancyQuery) ([]bookingModel.Booking, error) {
	var res []bookingModel.Booking

	for _, booking := range f.s.bookings {
		if booking.RoomTypeID == q.RoomTypeID && booking.Stay().Overlaps(q.Stay) {
			res = append(res, booking)
		}
	}

	return res, nil
}

type fakeRoomTypes struct {
	roomTypeRepo.RoomType
	s *store
}

func (f fakeRoomTypes) GetTx(_ context.Context, _ *sqlx.Tx, _ gDto.FilterGroup, _ ...string) (roomTypeModel.RoomType, error) {
	return f.s.roomType, nil
}

func (f fakeRoomTypes) GetForUpdateTx(_ context.Context, _ *sqlx.Tx, _ gDto.FilterGroup, _ ...string) (roomTypeModel.RoomType, error) {
	return f.s.roomType, nil
}

type fakeRoomLogs struct {
	roomLogRepo.RoomLog
}

func (fakeRoomLogs) InsertTx(_ context.Context, _ *sqlx.Tx, _ roomLogModel.RoomLog) error {
	return nil
}
