package service

import (
	"context"
	"fmt"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	inventoryModel "hotel/internal/domains/inventory/model"
	inventoryService "hotel/internal/domains/inventory/service"
	roomModel "hotel/internal/domains/room/model"
	roomLogModel "hotel/internal/domains/roomlog/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) validateStay(stay daterange.Range) error {
	if stay.Start.Before(timezone.DateOf(s.now())) {
		return failure.BadRequestFromString("check-in date must not be in the past") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) getRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

// checkCapacityTx runs both capacity checks against the locked room type:
// the room itself must be free, then the type must still have a unit left
// once every other booking and live hold is counted.
func (s *serviceImpl) checkCapacityTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, roomType roomTypeModel.RoomType, stay daterange.Range, excludeBookingID string) error {
	room, err := s.roomRepo.GetTx(ctx, sqltx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	roomAvailability, err := s.inventory.RoomAvailableTx(ctx, sqltx, room, roomType, stay, excludeBookingID)
	if err != nil {
		return err
	}

	if !roomAvailability.IsAvailable {
		if roomAvailability.Reason != constant.Empty {
			return failure.Conflict(fmt.Sprintf("room cannot be booked: %s", roomAvailability.Reason)) // nolint:wrapcheck
		}

		return failure.Conflict(ErrRoomBooked) // nolint:wrapcheck
	}

	typeAvailability, err := s.inventory.AvailableTx(ctx, sqltx, roomType, stay, 1, excludeBookingID)
	if err != nil {
		return err
	}

	if !typeAvailability.IsAvailable {
		return inventoryService.NotEnoughRooms(typeAvailability)
	}

	return nil
}

// Create books one room. The room type row is locked for the whole
// transaction; a hold given in the request is consumed before the capacity
// check so that the units it reserved count as free for this booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := shared.Actor(ctx)
	if userID == constant.Empty {
		return res, failure.Unauthorized("login required") // nolint:wrapcheck
	}

	stay, err := daterange.ParseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.validateStay(stay); err != nil {
		return res, err
	}

	if req.People <= 0 {
		return res, failure.BadRequestFromString("people must be greater than zero") // nolint:wrapcheck
	}

	room, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	checkout, err := s.pricing.Quote(ctx, room.RoomTypeID, stay)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(userID, stay, room.RoomTypeID, s.now())
	booking.Subtotal = checkout.Subtotal
	booking.Tax = checkout.Tax
	booking.TotalPrice = checkout.Total

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		roomType, err := s.inventory.LockRoomTypeTx(ctx, sqltx, room.RoomTypeID)
		if err != nil {
			return err
		}

		if req.People > roomType.MaxGuests {
			return failure.BadRequestFromString(fmt.Sprintf("room type allows at most %d guests", roomType.MaxGuests)) // nolint:wrapcheck
		}

		var hold inventoryModel.Hold
		if booking.HoldID != nil {
			if hold, err = s.inventory.ConsumeHoldTx(ctx, sqltx, *booking.HoldID, roomType.ID, stay); err != nil {
				return err
			}
		}

		if err = s.checkCapacityTx(ctx, sqltx, room.ID, roomType, stay, constant.Empty); err != nil {
			return err
		}

		if err = s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			log.Error().Err(err).Msg("failed to insert booking")

			return fmt.Errorf("failed to insert booking: %w", err)
		}

		entry := roomLogModel.New(roomLogModel.EventBookCreated, roomType.ID, room.ID, map[string]any{
			"booking_id": booking.ID,
			"check_in":   daterange.Format(stay.Start),
			"check_out":  daterange.Format(stay.End),
			"hold_id":    hold.ID,
			"total":      booking.TotalPrice,
		}, s.now())
		if err = s.roomLogRepo.InsertTx(ctx, sqltx, entry); err != nil {
			log.Error().Err(err).Msg("failed to insert booking log")

			return fmt.Errorf("failed to insert booking log: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("room_id", req.RoomID).Msg("booking not created")

		return res, err
	}

	s.publish(ctx, eventBookingCreated, booking, constant.Empty)

	res.FromModel(booking)

	return res, nil
}

// Reschedule moves a pending or accepted booking to new dates or a new party
// size. The booking itself is excluded from both capacity checks.
func (s *serviceImpl) Reschedule(ctx context.Context, id string, req dto.RescheduleRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	var booking model.Booking

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err = s.lockBooking(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if booking.Status != model.StatusPending && booking.Status != model.StatusAccepted {
			return failure.BadRequestFromString(fmt.Sprintf("a %s booking cannot be rescheduled", booking.Status)) // nolint:wrapcheck
		}

		roomType, err := s.inventory.LockRoomTypeTx(ctx, sqltx, booking.RoomTypeID)
		if err != nil {
			return err
		}

		userID, _ := shared.Actor(ctx)
		if userID != booking.UserID && !shared.CanManage(ctx, roomType.HotelOwnerID) {
			return failure.ResourceRestrictedError
		}

		stay, err := req.Stay(booking.Stay())
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if err = s.validateStay(stay); err != nil {
			return err
		}

		people := booking.People
		if req.People != nil {
			people = *req.People
		}

		if people <= 0 || people > roomType.MaxGuests {
			return failure.BadRequestFromString(fmt.Sprintf("people must be between 1 and %d", roomType.MaxGuests)) // nolint:wrapcheck
		}

		if err = s.checkCapacityTx(ctx, sqltx, booking.RoomID, roomType, stay, booking.ID); err != nil {
			return err
		}

		checkout, err := s.pricing.Quote(ctx, roomType.ID, stay)
		if err != nil {
			return err
		}

		previous := booking.Stay()

		booking.CheckInDate = stay.Start
		booking.CheckOutDate = stay.End
		booking.People = people
		booking.Subtotal = checkout.Subtotal
		booking.Tax = checkout.Tax
		booking.TotalPrice = checkout.Total
		booking.ModifiedAt = s.now()
		booking.ModifiedBy = userID

		changes := map[string]any{
			model.FieldCheckInDate:   booking.CheckInDate,
			model.FieldCheckOutDate:  booking.CheckOutDate,
			model.FieldPeople:        booking.People,
			model.FieldSubtotal:      booking.Subtotal,
			model.FieldTax:           booking.Tax,
			model.FieldTotalPrice:    booking.TotalPrice,
			constant.FieldModifiedAt: booking.ModifiedAt,
			constant.FieldModifiedBy: booking.ModifiedBy,
		}

		if err = s.repo.UpdateTx(ctx, sqltx, changes, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to reschedule booking")

			return fmt.Errorf("failed to reschedule booking: %w", err)
		}

		entry := roomLogModel.New(roomLogModel.EventBookRescheduled, roomType.ID, booking.RoomID, map[string]any{
			"booking_id": booking.ID,
			"from":       previous.String(),
			"to":         stay.String(),
			"people":     people,
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

	s.publish(ctx, eventBookingRescheduled, booking, constant.Empty)

	res.FromModel(booking)

	return res, nil
}
