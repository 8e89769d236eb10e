package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	roomLogModel "hotel/internal/domains/roomlog/model"
	roomLogRepo "hotel/internal/domains/roomlog/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeDto "hotel/internal/domains/roomtype/model/dto"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	eventHotelDisabled = "hotel.disabled"
	eventHotelEnabled  = "hotel.enabled"

	cacheGetHotel = constant.CachePrefixHotel + ":get"
)

const (
	ErrHotelNotFound = "hotel not found"
	ErrNotOwner      = "you are not the owner of this hotel"
)

type Service interface {
	Disable(ctx context.Context, id string) (dto.CascadeResponse, error)
	Enable(ctx context.Context, id string) (dto.CascadeResponse, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	RoomTypes(ctx context.Context, id string, params gDto.QueryParams) (roomTypeDto.GetRoomTypesResponse, error)
}

type serviceImpl struct {
	repo         repository.Hotel
	roomTypeRepo roomTypeRepo.RoomType
	roomRepo     roomRepo.Room
	roomLogRepo  roomLogRepo.RoomLog
	tx           postgres.Transactor
	cache        cache.RedisCache
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
	now          func() time.Time
}

func New(
	repo repository.Hotel,
	roomTypeRepo roomTypeRepo.RoomType,
	roomRepo roomRepo.Room,
	roomLogRepo roomLogRepo.RoomLog,
	tx postgres.Transactor,
	cache cache.RedisCache,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Service {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		roomRepo:     roomRepo,
		roomLogRepo:  roomLogRepo,
		tx:           tx,
		cache:        cache,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
		now:          time.Now,
	}
}

func (s *serviceImpl) Disable(ctx context.Context, id string) (res dto.CascadeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Disable")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.cascade(ctx, id, model.StatusDisabled)
}

func (s *serviceImpl) Enable(ctx context.Context, id string) (res dto.CascadeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Enable")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.cascade(ctx, id, model.StatusActive)
}

func (s *serviceImpl) owned(ctx context.Context, id string) (model.Hotel, error) {
	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to get hotel")

		return hotel, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return hotel, failure.NotFound(ErrHotelNotFound) // nolint:wrapcheck
	}

	if !shared.CanManage(ctx, hotel.OwnerID) {
		return hotel, failure.Forbidden(ErrNotOwner) // nolint:wrapcheck
	}

	return hotel, nil
}

// cascade moves the hotel, all its room types and their rooms in one
// transaction. Disabling takes every room out of service; enabling brings
// back only the rooms the disable put away, leaving maintenance alone.
// Bookings are never touched.
func (s *serviceImpl) cascade(ctx context.Context, id string, to model.Status) (res dto.CascadeResponse, err error) {
	hotel, err := s.owned(ctx, id)
	if err != nil {
		return res, err
	}

	userID, _ := shared.Actor(ctx)
	now := s.now()
	byHotel := roomTypeDto.ByHotel(hotel.ID)

	roomStatus, fromStatuses := roomModel.StatusDisabled, []roomModel.Status(nil)
	if to == model.StatusActive {
		roomStatus, fromStatuses = roomModel.StatusOperational, []roomModel.Status{roomModel.StatusDisabled}
	}

	var (
		roomTypes []roomTypeModel.RoomType
		affected  int64
	)

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if _, err := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(hotel.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to lock hotel")

			return fmt.Errorf("failed to lock hotel: %w", err)
		}

		hotelChanges := map[string]any{
			model.FieldStatus:        to,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: userID,
		}
		if err := s.repo.UpdateTx(ctx, sqltx, hotelChanges, shared.FilterByID(hotel.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to update hotel status")

			return fmt.Errorf("failed to update hotel status: %w", err)
		}

		typeChanges := map[string]any{
			roomTypeModel.FieldAvailability: to == model.StatusActive,
			constant.FieldModifiedAt:        now,
			constant.FieldModifiedBy:        userID,
		}
		if err := s.roomTypeRepo.UpdateTx(ctx, sqltx, typeChanges, byHotel); err != nil {
			log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to update room type availability")

			return fmt.Errorf("failed to update room type availability: %w", err)
		}

		if affected, err = s.roomRepo.SetStatusByHotelTx(ctx, sqltx, hotel.ID, roomStatus, fromStatuses, userID); err != nil {
			log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to update room statuses")

			return fmt.Errorf("failed to update room statuses: %w", err)
		}

		if err := s.roomTypeRepo.RecalculateQuantityTx(ctx, sqltx, byHotel); err != nil {
			log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to recalculate room type quantity")

			return fmt.Errorf("failed to recalculate room type quantity: %w", err)
		}

		if roomTypes, err = s.roomTypeRepo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, byHotel); err != nil {
			log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to get room types")

			return fmt.Errorf("failed to get room types: %w", err)
		}

		for _, roomType := range roomTypes {
			entry := roomLogModel.New(roomLogModel.EventHotelCascade, roomType.ID, constant.Empty, map[string]any{
				"hotel_id": hotel.ID,
				"status":   to.String(),
				"quantity": roomType.Quantity,
			}, now)
			if err := s.roomLogRepo.InsertTx(ctx, sqltx, entry); err != nil {
				log.Error().Err(err).Msg("failed to insert cascade log")

				return fmt.Errorf("failed to insert cascade log: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("hotel_id", hotel.ID).Str("status", to.String()).Msg("hotel cascade rolled back")

		return res, err
	}

	log.Info().Str("hotel_id", hotel.ID).Str("status", to.String()).Int("room_types", len(roomTypes)).Int64("rooms", affected).Msg("hotel cascade committed")

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, hotel.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel cache")
		}

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoomType)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoom)
	}()

	roomTypeIDs := make([]string, len(roomTypes))
	for i, roomType := range roomTypes {
		roomTypeIDs[i] = roomType.ID
	}

	eventType := eventHotelDisabled
	if to == model.StatusActive {
		eventType = eventHotelEnabled
	}

	shared.PublishEvents(ctx, s.kafka, s.cfg, s.cfg.Kafka.Topics.Hotel, kafka.NewEvent(hotel.ID, eventType, dto.HotelEvent{
		HotelID:       hotel.ID,
		Status:        to.String(),
		RoomTypeIDs:   roomTypeIDs,
		RoomsAffected: affected,
		ActedBy:       userID,
		OccurredAt:    now,
	}))

	res = dto.CascadeResponse{
		HotelID:       hotel.ID,
		Status:        to.String(),
		RoomTypes:     len(roomTypes),
		RoomsAffected: affected,
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound(ErrHotelNotFound) // nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) RoomTypes(ctx context.Context, id string, params gDto.QueryParams) (res roomTypeDto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, id); err != nil {
		return res, err
	}

	filter := roomTypeDto.ByHotel(id)
	cacheKey := shared.BuildCacheKeyWithQuery(constant.CachePrefixRoomType+":gets", params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	total, err := s.roomTypeRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	if params.SortBy != constant.Empty {
		params.SortBy = roomTypeModel.TableName + "." + params.SortBy
	}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(roomTypes, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}
