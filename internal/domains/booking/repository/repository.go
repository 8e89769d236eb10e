package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

var errMissingScope = errors.New("occupancy query needs a room or room type")

// OccupancyQuery selects bookings that overlap Stay. Exactly one of
// RoomTypeID or RoomID scopes the query.
type OccupancyQuery struct {
	RoomTypeID       string
	RoomID           string
	Stay             daterange.Range
	Statuses         []model.Status
	ExcludeBookingID string
}

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	GetOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, query OccupancyQuery) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// GetOverlappingTx lists bookings in one of the given statuses whose stay
// overlaps the query window. Bookings on disabled rooms are skipped for room
// type queries since those rooms are not part of the type's quantity.
func (r *repositoryImpl) GetOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, query OccupancyQuery) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetOverlappingTx")
	defer scope.End()

	if len(query.Statuses) == 0 {
		return []model.Booking{}, nil
	}

	filters := []any{
		gDto.Filter{Table: model.TableName, Field: model.FieldStatus, Operator: gDto.FilterOperatorIn, Value: query.Statuses},
		gDto.Filter{Table: model.TableName, Field: model.FieldCheckInDate, ArgName: "stay_end", Operator: gDto.FilterOperatorLess, Value: query.Stay.End},
		gDto.Filter{Table: model.TableName, Field: model.FieldCheckOutDate, ArgName: "stay_start", Operator: gDto.FilterOperatorGreater, Value: query.Stay.Start},
	}

	switch {
	case query.RoomID != constant.Empty:
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldRoomID, Operator: gDto.FilterOperatorEq, Value: query.RoomID})
	case query.RoomTypeID != constant.Empty:
		filters = append(filters,
			gDto.Filter{Table: model.JoinTableRooms, Field: roomModel.FieldRoomTypeID, Operator: gDto.FilterOperatorEq, Value: query.RoomTypeID},
			gDto.Filter{Table: model.JoinTableRooms, Field: roomModel.FieldStatus, ArgName: "room_status", Operator: gDto.FilterOperatorNotEq, Value: roomModel.StatusDisabled},
		)
	default:
		return nil, errMissingScope
	}

	if query.ExcludeBookingID != constant.Empty {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldID, ArgName: "exclude_id", Operator: gDto.FilterOperatorNotEq, Value: query.ExcludeBookingID})
	}

	bookings, err := r.GetAllTx(ctx, sqltx, gDto.QueryParams{}, gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	return bookings, nil
}
