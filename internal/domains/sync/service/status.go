package service

import (
	"context"
	"fmt"
	pricingModel "hotel/internal/domains/pricing/model"
	"hotel/internal/domains/sync/model/dto"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"time"

	"github.com/rs/zerolog/log"
)

// SyncStatus reports whether a hotel has enough configuration to be synced
// and when it was last synced.
func (s *serviceImpl) SyncStatus(ctx context.Context, hotelID string) (res dto.SyncStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.getHotel(ctx, hotelID)
	if err != nil {
		return res, err
	}

	roomTypes, err := s.roomTypes(ctx, hotel.ID)
	if err != nil {
		return res, err
	}

	res.HotelID = hotel.ID
	res.RoomTypes = len(roomTypes)

	if len(roomTypes) > 0 {
		ids := make([]string, len(roomTypes))
		for i, roomType := range roomTypes {
			ids[i] = roomType.ID
		}

		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    pricingModel.FieldRoomTypeID,
					Value:    ids,
					Operator: gDto.FilterOperatorIn,
					Table:    pricingModel.TableName,
				},
			},
		}

		prices, err := s.pricingRepo.GetAll(ctx, gDto.QueryParams{Limit: 1}, filter)
		if err != nil {
			log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to get room prices")

			return res, fmt.Errorf("failed to get room prices: %w", err)
		}

		res.PricingConfigured = len(prices) > 0
	}

	res.Status = statusIncomplete
	if res.RoomTypes > 0 && res.PricingConfigured {
		res.Status = statusReady
	}

	var lastSync time.Time
	if err := s.cache.Get(ctx, shared.BuildCacheKey(cacheLastSync, hotel.ID), &lastSync); err == nil {
		res.LastSync = &lastSync
	}

	return res, nil
}
