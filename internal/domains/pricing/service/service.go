package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/coupon"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/pricing/model"
	"hotel/internal/domains/pricing/model/dto"
	"hotel/internal/domains/pricing/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cachePriceRows = "pricing:rows"

	defaultMaxRangeDays = 366
)

type Pricing interface {
	PriceForDate(ctx context.Context, roomTypeID string, date time.Time) (model.Quote, error)
	GetPriceForDate(ctx context.Context, roomTypeID, date string) (dto.PriceForDateResponse, error)
	PriceRange(ctx context.Context, roomTypeID string, start, end time.Time) (dto.PriceRangeResponse, error)
	GetPriceRange(ctx context.Context, roomTypeID, start, end string) (dto.PriceRangeResponse, error)
	CalculatePrice(ctx context.Context, req dto.CalculatePriceRequest) (dto.CalculatePriceResponse, error)
	CheckoutTotal(ctx context.Context, req dto.CalculatePriceRequest) (dto.CheckoutTotalResponse, error)
	Quote(ctx context.Context, roomTypeID string, stay daterange.Range) (model.Checkout, error)
	ListPrices(ctx context.Context, roomTypeID string) (dto.ListPricesResponse, error)
	CreatePrice(ctx context.Context, roomTypeID string, req dto.CreatePriceRequest) (dto.RoomPriceResponse, error)
	UpdatePrice(ctx context.Context, priceID string, req dto.UpdatePriceRequest) (dto.RoomPriceResponse, error)
	Invalidate(ctx context.Context, roomTypeID string)
}

type serviceImpl struct {
	repo         repository.RoomPrice
	roomTypeRepo roomTypeRepo.RoomType
	coupon       coupon.Client
	tx           postgres.Transactor
	cache        cache.RedisCache
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.RoomPrice,
	roomTypeRepo roomTypeRepo.RoomType,
	coupon coupon.Client,
	tx postgres.Transactor,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Pricing {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		coupon:       coupon,
		tx:           tx,
		cache:        cache,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) maxRangeDays() int {
	if s.cfg.Inventory.MaxCalendarDays > 0 {
		return s.cfg.Inventory.MaxCalendarDays
	}

	return defaultMaxRangeDays
}

func (s *serviceImpl) resolver(rows []model.RoomPrice) resolver {
	return newResolver(rows, s.cfg.Pricing.DynamicEnabled)
}

func filterByRoomType(roomTypeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomTypeID,
				Value:    roomTypeID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// rows loads every price row of a room type, through the cache.
func (s *serviceImpl) rows(ctx context.Context, roomTypeID string) (res []model.RoomPrice, err error) {
	cacheKey := shared.BuildCacheKey(cachePriceRows, roomTypeID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for price rows")

		return res, nil
	}

	if res, err = s.freshRows(ctx, roomTypeID); err != nil {
		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save price rows to cache")
		}
	}()

	return res, nil
}

// freshRows reads the price rows from the database. Amounts stored on a
// booking come from here so a cache entry written back by a read racing a
// price update can never be charged.
func (s *serviceImpl) freshRows(ctx context.Context, roomTypeID string) ([]model.RoomPrice, error) {
	res, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filterByRoomType(roomTypeID))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get price rows")

		return nil, fmt.Errorf("failed to get price rows: %w", err)
	}

	if len(res) == 0 {
		return nil, failure.NotFound("price not configured for room type") // nolint:wrapcheck
	}

	return res, nil
}

// Invalidate drops the cached rows of a room type.
func (s *serviceImpl) Invalidate(ctx context.Context, roomTypeID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cachePriceRows, roomTypeID)); err != nil {
			log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to invalidate price rows")
		}
	}()
}

func (s *serviceImpl) ownedRoomType(ctx context.Context, roomTypeID string) (roomTypeModel.RoomType, error) {
	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	return roomType, checkOwner(ctx, roomType)
}

// lockOwnedRoomTypeTx serializes price writes of one room type.
func (s *serviceImpl) lockOwnedRoomTypeTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string) (roomTypeModel.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to lock room type")

		return roomType, fmt.Errorf("failed to lock room type: %w", err)
	}

	return roomType, checkOwner(ctx, roomType)
}

func checkOwner(ctx context.Context, roomType roomTypeModel.RoomType) error {
	if roomType.ID == constant.Empty {
		return failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if !shared.CanManage(ctx, roomType.HotelOwnerID) {
		return failure.Forbidden("you are not the owner of this hotel") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ListPrices(ctx context.Context, roomTypeID string) (res dto.ListPricesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.ownedRoomType(ctx, roomTypeID); err != nil {
		return res, err
	}

	prices, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartDate, SortDir: gDto.SortDirAsc}, filterByRoomType(roomTypeID))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to list prices")

		return res, fmt.Errorf("failed to list prices: %w", err)
	}

	res.FromModels(roomTypeID, prices)

	return res, nil
}

// CreatePrice adds the default row or an override window. The room type row
// is locked so that two overlapping windows cannot be written concurrently.
func (s *serviceImpl) CreatePrice(ctx context.Context, roomTypeID string, req dto.CreatePriceRequest) (res dto.RoomPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.Window()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	user, _ := shared.Actor(ctx)
	price := req.ToModel(roomTypeID, user, start, end, timezone.Now())

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if _, err := s.lockOwnedRoomTypeTx(ctx, sqltx, roomTypeID); err != nil {
			return err
		}

		existing, err := s.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filterByRoomType(roomTypeID))
		if err != nil {
			log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get price rows")

			return fmt.Errorf("failed to get price rows: %w", err)
		}

		if err = checkCandidate(existing, price); err != nil {
			return err
		}

		if err = s.repo.InsertTx(ctx, sqltx, price); err != nil {
			log.Error().Err(err).Msg("failed to insert price")

			return fmt.Errorf("failed to insert price: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.Invalidate(ctx, roomTypeID)

	res.FromModel(price)

	return res, nil
}

func (s *serviceImpl) UpdatePrice(ctx context.Context, priceID string, req dto.UpdatePriceRequest) (res dto.RoomPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.Window()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, shared.FilterByID(priceID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("price_id", priceID).Msg("failed to get price")

		return res, fmt.Errorf("failed to get price: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("price not found") // nolint:wrapcheck
	}

	var updated model.RoomPrice

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if _, err := s.lockOwnedRoomTypeTx(ctx, sqltx, current.RoomTypeID); err != nil {
			return err
		}

		existing, err := s.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filterByRoomType(current.RoomTypeID))
		if err != nil {
			log.Error().Err(err).Str("room_type_id", current.RoomTypeID).Msg("failed to get price rows")

			return fmt.Errorf("failed to get price rows: %w", err)
		}

		for _, row := range existing {
			if row.ID == priceID {
				current = row
			}
		}

		updated = req.Apply(current, start, end)

		if err = checkCandidate(existing, updated); err != nil {
			return err
		}

		user, _ := shared.Actor(ctx)
		updated.ModifiedAt = timezone.Now()
		updated.ModifiedBy = user

		changes := map[string]any{
			model.FieldBasicPrice:    updated.BasicPrice,
			model.FieldSpecialPrice:  updated.SpecialPrice,
			model.FieldDiscount:      updated.Discount,
			model.FieldEvent:         updated.Event,
			model.FieldStartDate:     updated.StartDate,
			model.FieldEndDate:       updated.EndDate,
			constant.FieldModifiedAt: updated.ModifiedAt,
			constant.FieldModifiedBy: updated.ModifiedBy,
		}

		if err = s.repo.UpdateTx(ctx, sqltx, changes, shared.FilterByID(priceID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("price_id", priceID).Msg("failed to update price")

			return fmt.Errorf("failed to update price: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.Invalidate(ctx, current.RoomTypeID)

	res.FromModel(updated)

	return res, nil
}
