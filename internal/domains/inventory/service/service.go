package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/inventory/model"
	"hotel/internal/domains/inventory/model/dto"
	"hotel/internal/domains/inventory/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	roomLogRepo "hotel/internal/domains/roomlog/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	defaultHoldMinutes     = 15
	defaultMaxCalendarDays = 366

	eventHoldCreated  = "hold.created"
	eventHoldReleased = "hold.released"
)

// ErrNotEnoughRooms is the message returned whenever capacity is exhausted at write time.
const ErrNotEnoughRooms = "not enough rooms available for the selected dates"

type Inventory interface {
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.AvailabilityResponse, error)
	Available(ctx context.Context, roomTypeID string, stay daterange.Range, quantity int) (model.Availability, error)
	RoomAvailable(ctx context.Context, roomID string, stay daterange.Range) (model.Availability, error)
	Calendar(ctx context.Context, roomTypeID, start, end string) (dto.CalendarResponse, error)
	CalendarDays(ctx context.Context, roomTypeID string, start, end time.Time) ([]dto.CalendarDay, error)
	CreateHold(ctx context.Context, req dto.CreateHoldRequest) (dto.HoldResponse, error)
	ReleaseHold(ctx context.Context, holdID string) (dto.ReleaseHoldResponse, error)
	GetHold(ctx context.Context, holdID string) (dto.HoldResponse, error)
	SweepExpiredHolds(ctx context.Context) (int64, error)
}

// Guard runs capacity checks inside a transaction owned by the caller. Callers
// must lock the room type with LockRoomTypeTx before checking and writing.
type Guard interface {
	LockRoomTypeTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string) (roomTypeModel.RoomType, error)
	AvailableTx(ctx context.Context, sqltx *sqlx.Tx, roomType roomTypeModel.RoomType, stay daterange.Range, quantity int, excludeBookingID string) (model.Availability, error)
	RoomAvailableTx(ctx context.Context, sqltx *sqlx.Tx, room roomModel.Room, roomType roomTypeModel.RoomType, stay daterange.Range, excludeBookingID string) (model.Availability, error)
	ConsumeHoldTx(ctx context.Context, sqltx *sqlx.Tx, holdID, roomTypeID string, stay daterange.Range) (model.Hold, error)
}

type Service interface {
	Inventory
	Guard
}

type serviceImpl struct {
	holdRepo     repository.Hold
	bookingRepo  bookingRepo.Booking
	roomRepo     roomRepo.Room
	roomTypeRepo roomTypeRepo.RoomType
	roomLogRepo  roomLogRepo.RoomLog
	tx           postgres.Transactor
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
	now          func() time.Time
}

func New(
	holdRepo repository.Hold,
	bookingRepo bookingRepo.Booking,
	roomRepo roomRepo.Room,
	roomTypeRepo roomTypeRepo.RoomType,
	roomLogRepo roomLogRepo.RoomLog,
	tx postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Service {
	return &serviceImpl{
		holdRepo:     holdRepo,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		roomLogRepo:  roomLogRepo,
		tx:           tx,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
		now:          time.Now,
	}
}

func (s *serviceImpl) holdMinutes() int {
	if s.cfg.Inventory.HoldDefaultMinutes > 0 {
		return s.cfg.Inventory.HoldDefaultMinutes
	}

	return defaultHoldMinutes
}

func (s *serviceImpl) maxCalendarDays() int {
	if s.cfg.Inventory.MaxCalendarDays > 0 {
		return s.cfg.Inventory.MaxCalendarDays
	}

	return defaultMaxCalendarDays
}

func (s *serviceImpl) activeStatuses() []bookingModel.Status {
	return bookingModel.ActiveStatuses(s.cfg.Inventory.CancelRequestOccupies)
}

func (s *serviceImpl) getRoomTypeTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string) (roomTypeModel.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetTx(ctx, sqltx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	return roomType, nil
}

func (s *serviceImpl) LockRoomTypeTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string) (res roomTypeModel.RoomType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LockRoomTypeTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.roomTypeRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to lock room type")

		return res, fmt.Errorf("failed to lock room type: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	return res, nil
}

// NotEnoughRooms builds the conflict returned when a write finds no capacity left.
func NotEnoughRooms(availability model.Availability) error {
	if availability.Reason != constant.Empty {
		return failure.Conflict(fmt.Sprintf("%s: %s", ErrNotEnoughRooms, availability.Reason)) // nolint:wrapcheck
	}

	return failure.Conflict(fmt.Sprintf("%s (requested %d, available %d)", ErrNotEnoughRooms, availability.Requested, availability.AvailableCount)) // nolint:wrapcheck
}

func userFromContext(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return constant.ContextGuest
	}

	return user
}
