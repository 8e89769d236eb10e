package service

import (
	"context"
	"fmt"
	"hotel/infras/kafka"
	"hotel/internal/domains/inventory/model"
	"hotel/internal/domains/inventory/model/dto"
	roomLogModel "hotel/internal/domains/roomlog/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// CreateHold reserves capacity for a short time. The room type row stays locked
// from the capacity check until the hold is inserted, so two requests for the
// last unit are serialized and only one of them succeeds.
func (s *serviceImpl) CreateHold(ctx context.Context, req dto.CreateHoldRequest) (res dto.HoldResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHold")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := daterange.ParseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if req.Quantity <= 0 {
		return res, failure.BadRequestFromString("quantity must be greater than zero") // nolint:wrapcheck
	}

	now := s.now()
	minutes := model.ClampHoldMinutes(req.HoldDurationMinutes, s.holdMinutes())

	hold := model.Hold{
		ID:           uuid.NewString(),
		RoomTypeID:   req.RoomTypeID,
		CheckInDate:  stay.Start,
		CheckOutDate: stay.End,
		Quantity:     req.Quantity,
		ExpiresAt:    now.Add(time.Duration(minutes) * time.Minute),
		CreatedAt:    now,
		CreatedBy:    userFromContext(ctx),
	}

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		roomType, err := s.LockRoomTypeTx(ctx, sqltx, req.RoomTypeID)
		if err != nil {
			return err
		}

		availability, err := s.AvailableTx(ctx, sqltx, roomType, stay, req.Quantity, constant.Empty)
		if err != nil {
			return err
		}

		if !availability.IsAvailable {
			return NotEnoughRooms(availability)
		}

		if err = s.holdRepo.InsertTx(ctx, sqltx, hold); err != nil {
			log.Error().Err(err).Msg("failed to insert hold")

			return fmt.Errorf("failed to insert hold: %w", err)
		}

		entry := roomLogModel.New(roomLogModel.EventHoldCreated, hold.RoomTypeID, constant.Empty, dto.NewHoldEvent(hold), now)
		if err = s.roomLogRepo.InsertTx(ctx, sqltx, entry); err != nil {
			log.Error().Err(err).Msg("failed to insert hold log")

			return fmt.Errorf("failed to insert hold log: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("room_type_id", req.RoomTypeID).Msg("hold not created")

		return res, err
	}

	shared.PublishEvents(ctx, s.kafka, s.cfg, s.cfg.Kafka.Topics.Hold, kafka.NewEvent(hold.ID, eventHoldCreated, dto.NewHoldEvent(hold)))

	res.FromModel(hold)

	return res, nil
}

// ReleaseHold deletes a live hold. Unknown and expired ids report false
// without error, so releasing twice never frees capacity twice.
func (s *serviceImpl) ReleaseHold(ctx context.Context, holdID string) (res dto.ReleaseHoldResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseHold")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.HoldID = holdID

	if err = uuid.Validate(holdID); err != nil {
		return res, nil
	}

	var released model.Hold

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		filter := shared.FilterByID(holdID, model.FieldID, model.TableName)

		hold, err := s.holdRepo.GetForUpdateTx(ctx, sqltx, filter)
		if err != nil {
			log.Error().Err(err).Str("hold_id", holdID).Msg("failed to get hold")

			return fmt.Errorf("failed to get hold: %w", err)
		}

		if hold.ID == constant.Empty || hold.IsExpired(s.now()) {
			return nil
		}

		if err = s.holdRepo.DeleteTx(ctx, sqltx, filter); err != nil {
			log.Error().Err(err).Str("hold_id", holdID).Msg("failed to delete hold")

			return fmt.Errorf("failed to delete hold: %w", err)
		}

		entry := roomLogModel.New(roomLogModel.EventHoldReleased, hold.RoomTypeID, constant.Empty, dto.NewHoldEvent(hold), s.now())
		if err = s.roomLogRepo.InsertTx(ctx, sqltx, entry); err != nil {
			log.Error().Err(err).Msg("failed to insert hold log")

			return fmt.Errorf("failed to insert hold log: %w", err)
		}

		released = hold

		return nil
	})
	if err != nil {
		return res, err
	}

	if released.ID == constant.Empty {
		log.Info().Str("hold_id", holdID).Msg("hold already released or expired")

		return res, nil
	}

	res.Released = true

	shared.PublishEvents(ctx, s.kafka, s.cfg, s.cfg.Kafka.Topics.Hold, kafka.NewEvent(released.ID, eventHoldReleased, dto.NewHoldEvent(released)))

	return res, nil
}

func (s *serviceImpl) GetHold(ctx context.Context, holdID string) (res dto.HoldResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHold")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(holdID) != nil {
		return res, failure.NotFound("hold not found") // nolint:wrapcheck
	}

	hold, err := s.holdRepo.Get(ctx, shared.FilterByID(holdID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hold_id", holdID).Msg("failed to get hold")

		return res, fmt.Errorf("failed to get hold: %w", err)
	}

	if hold.ID == constant.Empty || hold.IsExpired(s.now()) {
		return res, failure.NotFound("hold not found") // nolint:wrapcheck
	}

	res.FromModel(hold)

	return res, nil
}

// ConsumeHoldTx converts a hold into a booking by deleting it inside the
// booking transaction. The hold must be live, of the same room type and cover
// the stay being booked.
func (s *serviceImpl) ConsumeHoldTx(ctx context.Context, sqltx *sqlx.Tx, holdID, roomTypeID string, stay daterange.Range) (res model.Hold, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConsumeHoldTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(holdID) != nil {
		return res, failure.NotFound("hold not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(holdID, model.FieldID, model.TableName)

	res, err = s.holdRepo.GetForUpdateTx(ctx, sqltx, filter)
	if err != nil {
		log.Error().Err(err).Str("hold_id", holdID).Msg("failed to get hold")

		return res, fmt.Errorf("failed to get hold: %w", err)
	}

	switch {
	case res.ID == constant.Empty, res.IsExpired(s.now()):
		return res, failure.Conflict("hold not found or expired") // nolint:wrapcheck
	case res.RoomTypeID != roomTypeID:
		return res, failure.BadRequestFromString("hold belongs to a different room type") // nolint:wrapcheck
	case !res.Stay().Covers(stay):
		return res, failure.BadRequestFromString("hold does not cover the selected dates") // nolint:wrapcheck
	}

	if err = s.holdRepo.DeleteTx(ctx, sqltx, filter); err != nil {
		log.Error().Err(err).Str("hold_id", holdID).Msg("failed to delete hold")

		return res, fmt.Errorf("failed to delete hold: %w", err)
	}

	entry := roomLogModel.New(roomLogModel.EventHoldConverted, res.RoomTypeID, constant.Empty, dto.NewHoldEvent(res), s.now())
	if err = s.roomLogRepo.InsertTx(ctx, sqltx, entry); err != nil {
		log.Error().Err(err).Msg("failed to insert hold log")

		return res, fmt.Errorf("failed to insert hold log: %w", err)
	}

	return res, nil
}

// SweepExpiredHolds garbage collects expired rows. Reads already ignore them,
// so this never frees capacity that was still held.
func (s *serviceImpl) SweepExpiredHolds(ctx context.Context) (res int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepExpiredHolds")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.holdRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		log.Error().Err(err).Msg("failed to sweep expired holds")

		return 0, fmt.Errorf("failed to sweep expired holds: %w", err)
	}

	if res > 0 {
		log.Info().Int64("deleted", res).Msg("expired holds swept")
	}

	return res, nil
}
