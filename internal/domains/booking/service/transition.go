package service

import (
	"context"
	"fmt"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	roomModel "hotel/internal/domains/room/model"
	roomLogModel "hotel/internal/domains/roomlog/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) lockBooking(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) Transition(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	to, ok := model.ParseStatus(req.Status)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unsupported booking status %q", req.Status)) // nolint:wrapcheck
	}

	return s.transition(ctx, id, func(_ model.Booking, _ bool) (model.Status, error) {
		return to, nil
	})
}

// Cancel lets a guest ask for cancellation of their own booking, while the
// hotel's managers cancel it outright.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, func(booking model.Booking, manager bool) (model.Status, error) {
		if manager {
			return model.StatusCancelled, nil
		}

		return model.StatusCancelRequested, nil
	})
}

// transition applies one status change under a row lock on the booking and
// its room type. target picks the new status once the caller's rights are known.
func (s *serviceImpl) transition(ctx context.Context, id string, target func(booking model.Booking, manager bool) (model.Status, error)) (res dto.BookingResponse, err error) {
	var (
		booking  model.Booking
		previous model.Status
	)

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err = s.lockBooking(ctx, sqltx, id)
		if err != nil {
			return err
		}

		roomType, err := s.inventory.LockRoomTypeTx(ctx, sqltx, booking.RoomTypeID)
		if err != nil {
			return err
		}

		userID, _ := shared.Actor(ctx)
		manager := shared.CanManage(ctx, roomType.HotelOwnerID)

		to, err := target(booking, manager)
		if err != nil {
			return err
		}

		switch {
		case to.RequiresManager() && !manager:
			return failure.Forbidden("only the hotel owner can move a booking to " + string(to)) // nolint:wrapcheck
		case !to.RequiresManager() && !manager && userID != booking.UserID:
			return failure.ResourceRestrictedError
		case !booking.Status.CanTransition(to):
			return failure.BadRequestFromString(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, to)) // nolint:wrapcheck
		}

		if err = s.checkReactivationTx(ctx, sqltx, booking, roomType, to); err != nil {
			return err
		}

		previous = booking.Status
		booking.Status = to
		booking.ModifiedAt = s.now()
		booking.ModifiedBy = userID

		changes := map[string]any{
			model.FieldStatus:        booking.Status,
			constant.FieldModifiedAt: booking.ModifiedAt,
			constant.FieldModifiedBy: booking.ModifiedBy,
		}

		if err = s.repo.UpdateTx(ctx, sqltx, changes, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to update booking status")

			return fmt.Errorf("failed to update booking status: %w", err)
		}

		entry := roomLogModel.New(roomLogModel.EventBookStatusChanged, roomType.ID, booking.RoomID, map[string]any{
			"booking_id": booking.ID,
			"from":       previous,
			"to":         to,
		}, s.now())
		if err = s.roomLogRepo.InsertTx(ctx, sqltx, entry); err != nil {
			log.Error().Err(err).Msg("failed to insert booking log")

			return fmt.Errorf("failed to insert booking log: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("booking_id", booking.ID).Str("from", string(previous)).Str("to", string(booking.Status)).Msg("booking status changed")

	s.publish(ctx, eventBookingStatusChanged, booking, previous)

	res.FromModel(booking)

	return res, nil
}

// checkReactivationTx makes sure a booking whose room may have been given away
// meanwhile can only come back if the room is still free.
func (s *serviceImpl) checkReactivationTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking, roomType roomTypeModel.RoomType, to model.Status) error {
	occupies := s.cfg.Inventory.CancelRequestOccupies
	if booking.Status != model.StatusCancelRequested || !to.Occupies(occupies) {
		return nil
	}

	room, err := s.roomRepo.GetTx(ctx, sqltx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", booking.RoomID).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	availability, err := s.inventory.RoomAvailableTx(ctx, sqltx, room, roomType, booking.Stay(), booking.ID)
	if err != nil {
		return err
	}

	if availability.Occupied > 0 {
		return failure.Conflict(ErrRoomBooked) // nolint:wrapcheck
	}

	return nil
}
