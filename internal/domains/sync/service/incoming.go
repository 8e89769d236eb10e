package service

import (
	"context"
	"fmt"
	pricingModel "hotel/internal/domains/pricing/model"
	roomModel "hotel/internal/domains/room/model"
	roomLogModel "hotel/internal/domains/roomlog/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/sync/model/dto"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const incomingActor = "channel-manager"

// ApplyIncoming applies an update pushed by a channel manager in one
// transaction: default nightly prices and room statuses. Every room type
// touched must belong to the hotel named in the update.
func (s *serviceImpl) ApplyIncoming(ctx context.Context, req dto.IncomingSyncRequest) (res dto.IncomingSyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyIncoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.HotelID == constant.Empty {
		return res, failure.BadRequestFromString("hotel id is required") // nolint:wrapcheck
	}

	hotel, err := s.getHotel(ctx, req.HotelID)
	if err != nil {
		return res, err
	}

	user, _ := shared.Actor(ctx)
	if user == constant.Empty {
		user = incomingActor
	}

	now := s.now()
	touched := map[string]struct{}{}

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		for _, update := range req.PricingUpdates {
			if err := s.applyPriceTx(ctx, sqltx, hotel.ID, update, user, now); err != nil {
				return err
			}

			touched[update.RoomTypeID] = struct{}{}
		}

		for _, update := range req.AvailabilityUpdates {
			if err := s.applyRoomStatusTx(ctx, sqltx, hotel.ID, update, user, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("hotel_id", hotel.ID).Msg("incoming sync rolled back")

		return res, err
	}

	for roomTypeID := range touched {
		s.pricing.Invalidate(ctx, roomTypeID)
	}

	if len(req.AvailabilityUpdates) > 0 {
		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoom)
			shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoomType)
		}()
	}

	res = dto.IncomingSyncResponse{
		Processed: true,
		Records:   len(req.PricingUpdates) + len(req.AvailabilityUpdates),
		Timestamp: now,
	}

	log.Info().Str("hotel_id", hotel.ID).Int("records", res.Records).Msg("incoming sync applied")

	return res, nil
}

func (s *serviceImpl) lockHotelRoomTypeTx(ctx context.Context, sqltx *sqlx.Tx, hotelID, roomTypeID string) (roomTypeModel.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to lock room type")

		return roomType, fmt.Errorf("failed to lock room type: %w", err)
	}

	if roomType.ID == constant.Empty || roomType.HotelID != hotelID {
		return roomType, failure.NotFound(fmt.Sprintf("room type %s not found in hotel", roomTypeID)) // nolint:wrapcheck
	}

	return roomType, nil
}

// applyPriceTx sets the basic price of the room type's default row, creating
// the row when the room type has none yet.
func (s *serviceImpl) applyPriceTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string, update dto.PricingUpdate, user string, now time.Time) error {
	if update.Price < 0 {
		return failure.BadRequestFromString("price must not be negative") // nolint:wrapcheck
	}

	roomType, err := s.lockHotelRoomTypeTx(ctx, sqltx, hotelID, update.RoomTypeID)
	if err != nil {
		return err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: pricingModel.FieldRoomTypeID, Value: roomType.ID, Operator: gDto.FilterOperatorEq, Table: pricingModel.TableName},
			gDto.Filter{Field: pricingModel.FieldStartDate, Operator: gDto.FilterIsNull, Table: pricingModel.TableName},
			gDto.Filter{Field: pricingModel.FieldEndDate, Operator: gDto.FilterIsNull, Table: pricingModel.TableName},
		},
	}

	rows, err := s.pricingRepo.GetAllTx(ctx, sqltx, gDto.QueryParams{Limit: 1}, filter)
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to get default price")

		return fmt.Errorf("failed to get default price: %w", err)
	}

	price := update.Price

	if len(rows) == 0 {
		row := pricingModel.RoomPrice{
			ID:         uuid.NewString(),
			RoomTypeID: roomType.ID,
			BasicPrice: &price,
			Metadata:   gModel.NewMetadata(user, now),
		}

		if err := s.pricingRepo.InsertTx(ctx, sqltx, row); err != nil {
			log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to insert default price")

			return fmt.Errorf("failed to insert default price: %w", err)
		}

		return nil
	}

	changes := map[string]any{
		pricingModel.FieldBasicPrice: price,
		constant.FieldModifiedAt:     now,
		constant.FieldModifiedBy:     user,
	}

	if err := s.pricingRepo.UpdateTx(ctx, sqltx, changes, shared.FilterByID(rows[0].ID, pricingModel.FieldID, pricingModel.TableName)); err != nil {
		log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to update default price")

		return fmt.Errorf("failed to update default price: %w", err)
	}

	return nil
}

func (s *serviceImpl) applyRoomStatusTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string, update dto.RoomStatusUpdate, user string, now time.Time) error {
	if update.Status == nil || !roomModel.Status(*update.Status).IsValid() {
		return failure.BadRequestFromString(fmt.Sprintf("room %s has an unsupported status", update.RoomID)) // nolint:wrapcheck
	}

	status := roomModel.Status(*update.Status)

	var estimate *time.Time

	if update.EstimatedAvailableAt != nil && *update.EstimatedAvailableAt != constant.Empty {
		date, err := daterange.Parse(*update.EstimatedAvailableAt)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		estimate = &date
	}

	room, err := s.roomRepo.GetTx(ctx, sqltx, shared.FilterByID(update.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", update.RoomID).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound(fmt.Sprintf("room %s not found", update.RoomID)) // nolint:wrapcheck
	}

	if _, err = s.lockHotelRoomTypeTx(ctx, sqltx, hotelID, room.RoomTypeID); err != nil {
		return err
	}

	changes := map[string]any{
		roomModel.FieldStatus:               status,
		roomModel.FieldEstimatedAvailableAt: estimate,
		constant.FieldModifiedAt:            now,
		constant.FieldModifiedBy:            user,
	}

	if err = s.roomRepo.UpdateTx(ctx, sqltx, changes, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	if err = s.roomTypeRepo.RecalculateQuantityTx(ctx, sqltx, shared.FilterByID(room.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName)); err != nil {
		log.Error().Err(err).Str("room_type_id", room.RoomTypeID).Msg("failed to recalculate room type quantity")

		return fmt.Errorf("failed to recalculate room type quantity: %w", err)
	}

	entry := roomLogModel.New(roomLogModel.EventRoomStatusChanged, room.RoomTypeID, room.ID, map[string]any{
		"from":   room.Status.String(),
		"to":     status.String(),
		"source": incomingActor,
	}, now)
	if err = s.roomLogRepo.InsertTx(ctx, sqltx, entry); err != nil {
		log.Error().Err(err).Msg("failed to insert room log")

		return fmt.Errorf("failed to insert room log: %w", err)
	}

	return nil
}
