package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	inventoryService "hotel/internal/domains/inventory/service"
	pricingService "hotel/internal/domains/pricing/service"
	roomRepo "hotel/internal/domains/room/repository"
	roomLogRepo "hotel/internal/domains/roomlog/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	eventBookingCreated       = "booking.created"
	eventBookingStatusChanged = "booking.status_changed"
	eventBookingRescheduled   = "booking.rescheduled"
)

// ErrRoomBooked is returned when the requested room already has an occupying
// booking overlapping the stay.
const ErrRoomBooked = "room is already booked for the selected dates"

type Service interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Transition(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Reschedule(ctx context.Context, id string, req dto.RescheduleRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	roomTypeRepo roomTypeRepo.RoomType
	roomLogRepo  roomLogRepo.RoomLog
	inventory    inventoryService.Guard
	pricing      pricingService.Pricing
	tx           postgres.Transactor
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
	now          func() time.Time
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	roomTypeRepo roomTypeRepo.RoomType,
	roomLogRepo roomLogRepo.RoomLog,
	inventory inventoryService.Guard,
	pricing pricingService.Pricing,
	tx postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Service {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		roomLogRepo:  roomLogRepo,
		inventory:    inventory,
		pricing:      pricing,
		tx:           tx,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
		now:          time.Now,
	}
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking, previous model.Status) {
	shared.PublishEvents(ctx, s.kafka, s.cfg, s.cfg.Kafka.Topics.Booking,
		kafka.NewEvent(booking.ID, eventType, dto.NewBookingEvent(booking, previous)))
}

// canView lets the guest who booked and the hotel's managers read a booking.
func (s *serviceImpl) canView(ctx context.Context, booking model.Booking) (bool, error) {
	userID, _ := shared.Actor(ctx)
	if userID != constant.Empty && userID == booking.UserID {
		return true, nil
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(booking.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", booking.RoomTypeID).Msg("failed to get room type")

		return false, fmt.Errorf("failed to get room type: %w", err)
	}

	return shared.CanManage(ctx, roomType.HotelOwnerID), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	allowed, err := s.canView(ctx, booking)
	if err != nil {
		return res, err
	}

	if !allowed {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if params.SortBy != constant.Empty {
		params.SortBy = model.TableName + "." + params.SortBy
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	userID, _ := shared.Actor(ctx)
	if userID == constant.Empty {
		return res, failure.Unauthorized("login required") // nolint:wrapcheck
	}

	return s.GetAll(ctx, params, dto.BookingFilter{UserID: userID}.ToFilterGroup())
}
