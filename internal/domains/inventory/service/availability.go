package service

import (
	"context"
	"fmt"
	"hotel/infras/postgres"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/inventory/model"
	"hotel/internal/domains/inventory/model/dto"
	roomModel "hotel/internal/domains/room/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := daterange.ParseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	var availability model.Availability

	if req.RoomID != constant.Empty {
		availability, err = s.RoomAvailable(ctx, req.RoomID, stay)
	} else {
		availability, err = s.Available(ctx, req.RoomTypeID, stay, req.RequestedQuantity())
	}

	if err != nil {
		return res, err
	}

	res.FromModel(availability, stay)

	return res, nil
}

// Available reads every count from one snapshot so that occupied and held
// rooms are consistent with each other.
func (s *serviceImpl) Available(ctx context.Context, roomTypeID string, stay daterange.Range, quantity int) (res model.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Available")
	defer scope.End()
	defer scope.TraceIfError(err)

	if quantity <= 0 {
		return res, failure.BadRequestFromString("quantity must be greater than zero") // nolint:wrapcheck
	}

	if stay.Nights() <= 0 {
		return res, failure.BadRequest(daterange.ErrInvalidRange) // nolint:wrapcheck
	}

	err = s.tx.WithinTransaction(ctx, postgres.ReadSnapshot, func(ctx context.Context, sqltx *sqlx.Tx) error {
		roomType, err := s.getRoomTypeTx(ctx, sqltx, roomTypeID)
		if err != nil {
			return err
		}

		res, err = s.AvailableTx(ctx, sqltx, roomType, stay, quantity, constant.Empty)

		return err
	})

	return res, err
}

func (s *serviceImpl) AvailableTx(ctx context.Context, sqltx *sqlx.Tx, roomType roomTypeModel.RoomType, stay daterange.Range, quantity int, excludeBookingID string) (res model.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = model.Availability{
		RoomTypeID: roomType.ID,
		Quantity:   roomType.Quantity,
		Requested:  quantity,
	}

	if ok, reason := roomType.Bookable(); !ok {
		res.Reason = reason
		res.Compute()

		return res, nil
	}

	bookings, err := s.bookingRepo.GetOverlappingTx(ctx, sqltx, bookingRepo.OccupancyQuery{
		RoomTypeID:       roomType.ID,
		Stay:             stay,
		Statuses:         s.activeStatuses(),
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to get overlapping bookings")

		return res, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	holds, err := s.holdRepo.GetActiveTx(ctx, sqltx, roomType.ID, stay, s.now())
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to get active holds")

		return res, fmt.Errorf("failed to get active holds: %w", err)
	}

	res.Occupied = countOccupiedRooms(bookings, stay, s.cfg.Inventory.CancelRequestOccupies)
	res.Held = sumHeld(holds, stay, s.now())
	res.Compute()

	return res, nil
}

func (s *serviceImpl) RoomAvailable(ctx context.Context, roomID string, stay daterange.Range) (res model.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if stay.Nights() <= 0 {
		return res, failure.BadRequest(daterange.ErrInvalidRange) // nolint:wrapcheck
	}

	err = s.tx.WithinTransaction(ctx, postgres.ReadSnapshot, func(ctx context.Context, sqltx *sqlx.Tx) error {
		room, err := s.roomRepo.GetTx(ctx, sqltx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		roomType, err := s.getRoomTypeTx(ctx, sqltx, room.RoomTypeID)
		if err != nil {
			return err
		}

		res, err = s.RoomAvailableTx(ctx, sqltx, room, roomType, stay, constant.Empty)

		return err
	})

	return res, err
}

// RoomAvailableTx checks one physical room. Holds reserve capacity of a type,
// not of a room, so only the room's own bookings are considered.
func (s *serviceImpl) RoomAvailableTx(ctx context.Context, sqltx *sqlx.Tx, room roomModel.Room, roomType roomTypeModel.RoomType, stay daterange.Range, excludeBookingID string) (res model.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomAvailableTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = model.Availability{
		RoomTypeID: room.RoomTypeID,
		RoomID:     room.ID,
		Quantity:   1,
		Requested:  1,
	}

	if reason := room.Unavailable(stay.Start); reason != constant.Empty {
		res.Reason = reason
		res.Compute()

		return res, nil
	}

	if ok, reason := roomType.Bookable(); !ok {
		res.Reason = reason
		res.Compute()

		return res, nil
	}

	bookings, err := s.bookingRepo.GetOverlappingTx(ctx, sqltx, bookingRepo.OccupancyQuery{
		RoomID:           room.ID,
		Stay:             stay,
		Statuses:         s.activeStatuses(),
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to get overlapping bookings")

		return res, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	res.Occupied = countOccupiedRooms(bookings, stay, s.cfg.Inventory.CancelRequestOccupies)
	res.Compute()

	return res, nil
}

func (s *serviceImpl) Calendar(ctx context.Context, roomTypeID, start, end string) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	startDate, err := daterange.Parse(start)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	endDate, err := daterange.Parse(end)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	days, err := s.CalendarDays(ctx, roomTypeID, startDate, endDate)
	if err != nil {
		return res, err
	}

	res.RoomTypeID = roomTypeID
	res.Start = daterange.Format(startDate)
	res.End = daterange.Format(endDate)
	res.Days = days

	return res, nil
}

// CalendarDays reports availability for every date from start to end, both
// included, from a single snapshot.
func (s *serviceImpl) CalendarDays(ctx context.Context, roomTypeID string, start, end time.Time) (res []dto.CalendarDay, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalendarDays")
	defer scope.End()
	defer scope.TraceIfError(err)

	days := daterange.Inclusive(start, end)
	if len(days) == 0 {
		return nil, failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	if len(days) > s.maxCalendarDays() {
		return nil, failure.BadRequestFromString(fmt.Sprintf("calendar window must not exceed %d days", s.maxCalendarDays())) // nolint:wrapcheck
	}

	window := daterange.Range{Start: days[0], End: days[len(days)-1].AddDate(0, 0, 1)}

	err = s.tx.WithinTransaction(ctx, postgres.ReadSnapshot, func(ctx context.Context, sqltx *sqlx.Tx) error {
		roomType, err := s.getRoomTypeTx(ctx, sqltx, roomTypeID)
		if err != nil {
			return err
		}

		quantity := roomType.Quantity
		if ok, _ := roomType.Bookable(); !ok {
			quantity = 0
		}

		bookings, err := s.bookingRepo.GetOverlappingTx(ctx, sqltx, bookingRepo.OccupancyQuery{
			RoomTypeID: roomType.ID,
			Stay:       window,
			Statuses:   s.activeStatuses(),
		})
		if err != nil {
			log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to get overlapping bookings")

			return fmt.Errorf("failed to get overlapping bookings: %w", err)
		}

		holds, err := s.holdRepo.GetActiveTx(ctx, sqltx, roomType.ID, window, s.now())
		if err != nil {
			log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to get active holds")

			return fmt.Errorf("failed to get active holds: %w", err)
		}

		now := s.now()
		res = make([]dto.CalendarDay, len(days))

		for i, day := range days {
			night := daterange.Night(day)
			booked := countOccupiedRooms(bookings, night, s.cfg.Inventory.CancelRequestOccupies)
			held := sumHeld(holds, night, now)

			res[i] = dto.CalendarDay{
				Date:      daterange.Format(day),
				Quantity:  quantity,
				Booked:    booked,
				Held:      held,
				Available: max(quantity-booked-held, 0),
			}
		}

		return nil
	})

	return res, err
}

// countOccupiedRooms counts distinct rooms with an occupying booking that
// overlaps stay. The statuses are checked again so that callers can pass a
// wider result set than the window.
func countOccupiedRooms(bookings []bookingModel.Booking, stay daterange.Range, cancelRequestOccupies bool) int {
	rooms := make(map[string]struct{}, len(bookings))

	for _, booking := range bookings {
		if !booking.Status.Occupies(cancelRequestOccupies) || !booking.Stay().Overlaps(stay) {
			continue
		}

		rooms[booking.RoomID] = struct{}{}
	}

	return len(rooms)
}

// sumHeld adds the quantities of unexpired holds overlapping stay. Expired
// holds are skipped here even when the sweeper has not removed them yet.
func sumHeld(holds []model.Hold, stay daterange.Range, now time.Time) int {
	held := 0

	for _, hold := range holds {
		if hold.IsExpired(now) || !hold.Stay().Overlaps(stay) {
			continue
		}

		held += hold.Quantity
	}

	return held
}
