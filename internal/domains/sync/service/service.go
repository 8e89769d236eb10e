package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/s3"
	hotelModel "hotel/internal/domains/hotel/model"
	hotelRepo "hotel/internal/domains/hotel/repository"
	inventoryService "hotel/internal/domains/inventory/service"
	pricingRepo "hotel/internal/domains/pricing/repository"
	pricingService "hotel/internal/domains/pricing/service"
	roomRepo "hotel/internal/domains/room/repository"
	roomLogRepo "hotel/internal/domains/roomlog/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeDto "hotel/internal/domains/roomtype/model/dto"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/internal/domains/sync/model/dto"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConcurrency   = 4
	defaultMaxWindowDays = 366

	cacheLastSync = "sync:last"
	exportDir     = "sync"

	eventHotelSynced = "sync.completed"

	statusReady      = "ready"
	statusIncomplete = "incomplete"
)

type Service interface {
	SyncMultipleHotels(ctx context.Context, req dto.SyncHotelsRequest) ([]dto.HotelSyncResult, error)
	SyncStatus(ctx context.Context, hotelID string) (dto.SyncStatusResponse, error)
	ApplyIncoming(ctx context.Context, req dto.IncomingSyncRequest) (dto.IncomingSyncResponse, error)
}

type serviceImpl struct {
	hotelRepo    hotelRepo.Hotel
	roomTypeRepo roomTypeRepo.RoomType
	roomRepo     roomRepo.Room
	pricingRepo  pricingRepo.RoomPrice
	roomLogRepo  roomLogRepo.RoomLog
	inventory    inventoryService.Inventory
	pricing      pricingService.Pricing
	tx           postgres.Transactor
	s3           s3.S3
	cache        cache.RedisCache
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
	now          func() time.Time
}

func New(
	hotelRepo hotelRepo.Hotel,
	roomTypeRepo roomTypeRepo.RoomType,
	roomRepo roomRepo.Room,
	pricingRepo pricingRepo.RoomPrice,
	roomLogRepo roomLogRepo.RoomLog,
	inventory inventoryService.Inventory,
	pricing pricingService.Pricing,
	tx postgres.Transactor,
	s3 s3.S3,
	cache cache.RedisCache,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Service {
	return &serviceImpl{
		hotelRepo:    hotelRepo,
		roomTypeRepo: roomTypeRepo,
		roomRepo:     roomRepo,
		pricingRepo:  pricingRepo,
		roomLogRepo:  roomLogRepo,
		inventory:    inventory,
		pricing:      pricing,
		tx:           tx,
		s3:           s3,
		cache:        cache,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
		now:          time.Now,
	}
}

func (s *serviceImpl) concurrency() int {
	if s.cfg.Sync.Concurrency > 0 {
		return s.cfg.Sync.Concurrency
	}

	return defaultConcurrency
}

func (s *serviceImpl) maxWindowDays() int {
	if s.cfg.Sync.MaxWindowDays > 0 {
		return s.cfg.Sync.MaxWindowDays
	}

	return defaultMaxWindowDays
}

func (s *serviceImpl) validate(req dto.SyncHotelsRequest) (start, end time.Time, err error) {
	if len(req.HotelIDs) == 0 {
		return start, end, failure.BadRequestFromString("at least one hotel id is required") // nolint:wrapcheck
	}

	for _, id := range req.HotelIDs {
		if id == constant.Empty {
			return start, end, failure.BadRequestFromString("hotel ids must not be empty") // nolint:wrapcheck
		}
	}

	if start, err = daterange.Parse(req.StartDate); err != nil {
		return start, end, failure.BadRequest(err) // nolint:wrapcheck
	}

	if end, err = daterange.Parse(req.EndDate); err != nil {
		return start, end, failure.BadRequest(err) // nolint:wrapcheck
	}

	days := daterange.DaysBetween(start, end) + 1
	if days <= 0 {
		return start, end, failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	if days > s.maxWindowDays() {
		return start, end, failure.BadRequestFromString(fmt.Sprintf("sync window must not exceed %d days", s.maxWindowDays())) // nolint:wrapcheck
	}

	return start, end, nil
}

// SyncMultipleHotels syncs every hotel independently. Results keep the order
// of the request and a failed hotel only fails its own slot.
func (s *serviceImpl) SyncMultipleHotels(ctx context.Context, req dto.SyncHotelsRequest) (res []dto.HotelSyncResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncMultipleHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	res = make([]dto.HotelSyncResult, len(req.HotelIDs))

	var group errgroup.Group
	group.SetLimit(s.concurrency())

	for i, hotelID := range req.HotelIDs {
		group.Go(func() error {
			res[i] = s.syncHotel(ctx, hotelID, start, end)

			return nil
		})
	}

	_ = group.Wait()

	failed := 0

	for _, result := range res {
		if !result.Success {
			failed++
		}
	}

	log.Info().Int("hotels", len(res)).Int("failed", failed).Msg("multi-hotel sync finished")

	return res, nil
}

func (s *serviceImpl) syncHotel(ctx context.Context, hotelID string, start, end time.Time) (res dto.HotelSyncResult) {
	res.HotelID = hotelID

	if err := s.snapshot(ctx, &res, start, end); err != nil {
		log.Warn().Err(err).Str("hotel_id", hotelID).Msg("hotel sync failed")

		res.Fail(err)

		return res
	}

	return res
}

func (s *serviceImpl) snapshot(ctx context.Context, res *dto.HotelSyncResult, start, end time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".syncHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.getHotel(ctx, res.HotelID)
	if err != nil {
		return err
	}

	roomTypes, err := s.roomTypes(ctx, hotel.ID)
	if err != nil {
		return err
	}

	res.HotelName = hotel.Name
	res.StartDate = daterange.Format(start)
	res.EndDate = daterange.Format(end)
	res.Availability = make([]dto.RoomTypeAvailability, len(roomTypes))
	res.Pricing = make([]dto.RoomTypePricing, len(roomTypes))

	for i, roomType := range roomTypes {
		days, err := s.inventory.CalendarDays(ctx, roomType.ID, start, end)
		if err != nil {
			return fmt.Errorf("availability of room type %s: %w", roomType.Name, err)
		}

		res.Availability[i] = dto.RoomTypeAvailability{
			RoomTypeID: roomType.ID,
			Name:       roomType.Name,
			Quantity:   roomType.Quantity,
			Days:       days,
		}

		res.Pricing[i] = dto.RoomTypePricing{RoomTypeID: roomType.ID, Name: roomType.Name}

		prices, err := s.pricing.PriceRange(ctx, roomType.ID, start, end)
		if failure.IsCode(err, http.StatusNotFound) {
			continue
		}

		if err != nil {
			return fmt.Errorf("pricing of room type %s: %w", roomType.Name, err)
		}

		res.Pricing[i].Configured = true
		res.Pricing[i].Days = prices.Days
		res.Pricing[i].Min = prices.Min
		res.Pricing[i].Max = prices.Max
		res.Pricing[i].Average = prices.Average
	}

	syncedAt := s.now().UTC()
	res.SyncedAt = &syncedAt
	res.Success = true

	if s.cfg.Sync.ExportEnabled {
		url, err := s.export(ctx, *res)
		if err != nil {
			return err
		}

		res.ExportURL = &url
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, shared.BuildCacheKey(cacheLastSync, hotel.ID), syncedAt, 0); err != nil {
			log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to save last sync time")
		}
	}()

	shared.PublishEvents(ctx, s.kafka, s.cfg, s.cfg.Kafka.Topics.SyncOutgoing, kafka.NewEvent(hotel.ID, eventHotelSynced, dto.SyncEvent{
		HotelID:   hotel.ID,
		StartDate: res.StartDate,
		EndDate:   res.EndDate,
		RoomTypes: len(roomTypes),
		ExportURL: res.ExportURL,
		SyncedAt:  syncedAt,
	}))

	return nil
}

// export uploads the snapshot to sync/<hotel>/<timestamp>.json.
func (s *serviceImpl) export(ctx context.Context, res dto.HotelSyncResult) (string, error) {
	body, err := json.Marshal(res)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to encode sync snapshot: %w", err)
	}

	bucket := s.cfg.Sync.ExportBucket
	if bucket == constant.Empty {
		bucket = s.cfg.External.S3.BucketName
	}

	fileName := res.SyncedAt.Format("20060102T150405Z") + ".json"

	url, err := s.s3.UploadFileBytes(ctx, bucket, exportDir+"/"+res.HotelID, fileName, constant.ContentTypeJSON, body)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", res.HotelID).Msg("failed to export sync snapshot")

		return constant.Empty, fmt.Errorf("failed to export sync snapshot: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) getHotel(ctx context.Context, id string) (hotelModel.Hotel, error) {
	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(id, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to get hotel")

		return hotel, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return hotel, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	return hotel, nil
}

func (s *serviceImpl) roomTypes(ctx context.Context, hotelID string) ([]roomTypeModel.RoomType, error) {
	params := gDto.QueryParams{SortBy: roomTypeModel.TableName + "." + roomTypeModel.FieldName, SortDir: gDto.SortDirAsc}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, params, roomTypeDto.ByHotel(hotelID))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get room types")

		return nil, fmt.Errorf("failed to get room types: %w", err)
	}

	return roomTypes, nil
}
