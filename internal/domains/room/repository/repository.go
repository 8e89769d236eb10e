package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	SetStatusByHotelTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string, to model.Status, from []model.Status, user string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// SetStatusByHotelTx moves every room of the hotel's room types to status to.
// When from is not empty only rooms currently in one of those statuses change.
func (r *repositoryImpl) SetStatusByHotelTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string, to model.Status, from []model.Status, user string) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.SetStatusByHotelTx")
	defer scope.End()

	args := map[string]any{
		"hotel_id":               hotelID,
		"to_status":              to,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :to_status, %s = :%s, %s = :%s WHERE %s IN (SELECT %s FROM %s WHERE %s = :hotel_id)",
		model.TableName, model.FieldStatus,
		constant.FieldModifiedAt, constant.FieldModifiedAt,
		constant.FieldModifiedBy, constant.FieldModifiedBy,
		model.FieldRoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName, roomTypeModel.FieldHotelID,
	)

	if len(from) > 0 {
		named := make([]string, len(from))
		for i, status := range from {
			key := fmt.Sprintf("from_status_%d", i)
			args[key] = status
			named[i] = ":" + key
		}

		query += fmt.Sprintf(" AND %s IN (%s)", model.FieldStatus, strings.Join(named, ", "))
	}

	affected, err := r.ExecRaw(ctx, sqltx, query, args)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update room statuses of hotel: %w", err)
	}

	return affected, nil
}
