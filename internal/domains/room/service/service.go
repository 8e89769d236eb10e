package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/s3"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	roomLogModel "hotel/internal/domains/roomlog/model"
	roomLogRepo "hotel/internal/domains/roomlog/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = constant.CachePrefixRoom + ":get"
	cacheGetAllRoom = constant.CachePrefixRoom + ":gets"
	cacheCountRoom  = constant.CachePrefixRoom + ":count"
)

type Service interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	GetByRoomType(ctx context.Context, roomTypeID string, params gDto.QueryParams) (dto.GetRoomsResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	UpdateStatus(ctx context.Context, id string, req dto.UpdateRoomStatusRequest) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo         repository.Room
	roomTypeRepo roomTypeRepo.RoomType
	roomLogRepo  roomLogRepo.RoomLog
	tx           postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
	now          func() time.Time
}

func New(
	repo repository.Room,
	roomTypeRepo roomTypeRepo.RoomType,
	roomLogRepo roomLogRepo.RoomLog,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Service {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		roomLogRepo:  roomLogRepo,
		tx:           tx,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
		now:          time.Now,
	}
}

// lockOwnedRoomType locks the room type row and checks the caller manages its hotel.
func (s *serviceImpl) lockOwnedRoomType(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string) (roomTypeModel.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to lock room type")

		return roomType, fmt.Errorf("failed to lock room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if !shared.CanManage(ctx, roomType.HotelOwnerID) {
		return roomType, failure.Forbidden("you are not the owner of this hotel") // nolint:wrapcheck
	}

	return roomType, nil
}

func (s *serviceImpl) recalculateTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string) error {
	if err := s.roomTypeRepo.RecalculateQuantityTx(ctx, sqltx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName)); err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to recalculate room type quantity")

		return fmt.Errorf("failed to recalculate room type quantity: %w", err)
	}

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, image *dto.CreateRoomRequest) (url, objectName string, err error) {
	if image.Image == nil {
		return constant.Empty, constant.Empty, nil
	}

	objectName = uuid.NewString()

	// Keep the original extension
	parts := strings.Split(image.Image.Filename, ".")
	if len(parts) > 1 {
		objectName = fmt.Sprintf("%s.%s", objectName, parts[len(parts)-1])
	}

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, image.ImageFile, image.Image, objectName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, objectName, nil
}

// removeImage deletes an object that no row points to. A failure leaves an
// orphan in the bucket and is only logged.
func (s *serviceImpl) removeImage(ctx context.Context, bucketName, objectName string) {
	if err := s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName); err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to delete room image")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if roomID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, roomID)); err != nil {
				log.Error().Err(err).Msg("failed to delete room cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoomType)
	}()
}

// Create adds a room and recomputes its type's quantity in the same
// transaction. The uploaded image is removed again if the insert fails.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.Actor(ctx)

	imageURL, objectName, err := s.uploadImage(ctx, &req)
	if err != nil {
		return res, err
	}

	room := req.ToModel(user, imageURL, s.now())

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if _, err := s.lockOwnedRoomType(ctx, sqltx, req.RoomTypeID); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, sqltx, room); err != nil {
			log.Error().Err(err).Msg("failed to insert room")

			return fmt.Errorf("failed to insert room: %w", err)
		}

		return s.recalculateTx(ctx, sqltx, req.RoomTypeID)
	})
	if err != nil {
		if objectName != constant.Empty {
			s.removeImage(ctx, s.cfg.External.S3.BucketName, objectName)
		}

		return res, err
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByRoomType(ctx context.Context, roomTypeID string, params gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := dto.ByRoomType(roomTypeID)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

// Update changes descriptive fields and the image. Status changes go through
// UpdateStatus so that quantity stays in sync.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.Actor(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(current.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if !shared.CanManage(ctx, roomType.HotelOwnerID) {
		return failure.Forbidden("you are not the owner of this hotel") // nolint:wrapcheck
	}

	imageURL, objectName, err := s.uploadImage(ctx, &dto.CreateRoomRequest{Image: req.Image, ImageFile: req.ImageFile})
	if err != nil {
		return err
	}

	bucketName := s.cfg.External.S3.BucketName

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		if objectName != constant.Empty {
			s.removeImage(ctx, bucketName, objectName)
		}

		return fmt.Errorf("failed to update room: %w", err)
	}

	// The old image goes only once the new one is stored
	if imageURL != constant.Empty && current.Image != constant.Empty {
		if oldObjectName := s.s3.GetObjectNameFromURL(bucketName, current.Image); oldObjectName != constant.Empty {
			s.removeImage(ctx, bucketName, oldObjectName)
		}
	}

	s.invalidate(ctx, current.ID)

	return nil
}

// UpdateStatus moves a room between operational, maintenance and disabled,
// recomputing its type's quantity and logging the change in one transaction.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateRoomStatusRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status == nil {
		return res, failure.BadRequestFromString("status is required") // nolint:wrapcheck
	}

	status, estimate, err := req.Apply()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !status.IsValid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unsupported room status %d", status)) // nolint:wrapcheck
	}

	user, _ := shared.Actor(ctx)

	var room model.Room

	err = s.tx.WithinTransaction(ctx, nil, func(ctx context.Context, sqltx *sqlx.Tx) error {
		room, err = s.repo.GetTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		// Room type first, then room, the same order bookings lock in
		if _, err = s.lockOwnedRoomType(ctx, sqltx, room.RoomTypeID); err != nil {
			return err
		}

		if room, err = s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("room_id", id).Msg("failed to lock room")

			return fmt.Errorf("failed to lock room: %w", err)
		}

		previous := room.Status
		room.Status = status
		room.EstimatedAvailableAt = estimate
		room.ModifiedAt = s.now()
		room.ModifiedBy = user

		changes := map[string]any{
			model.FieldStatus:               room.Status,
			model.FieldEstimatedAvailableAt: room.EstimatedAvailableAt,
			constant.FieldModifiedAt:        room.ModifiedAt,
			constant.FieldModifiedBy:        room.ModifiedBy,
		}

		if err = s.repo.UpdateTx(ctx, sqltx, changes, shared.FilterByID(room.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("room_id", room.ID).Msg("failed to update room status")

			return fmt.Errorf("failed to update room status: %w", err)
		}

		if err = s.recalculateTx(ctx, sqltx, room.RoomTypeID); err != nil {
			return err
		}

		entry := roomLogModel.New(roomLogModel.EventRoomStatusChanged, room.RoomTypeID, room.ID, map[string]any{
			"from": previous.String(),
			"to":   status.String(),
		}, room.ModifiedAt)
		if err = s.roomLogRepo.InsertTx(ctx, sqltx, entry); err != nil {
			log.Error().Err(err).Msg("failed to insert room log")

			return fmt.Errorf("failed to insert room log: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.invalidate(ctx, room.ID)

	res.FromModel(room)

	return res, nil
}
