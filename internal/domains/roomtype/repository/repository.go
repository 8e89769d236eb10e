package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/domains/roomtype/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomType interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	RecalculateQuantityTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomType]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// RecalculateQuantityTx sets quantity to the number of non-disabled rooms for
// every room type matched by filter.
func (r *repositoryImpl) RecalculateQuantityTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_type.RecalculateQuantityTx")
	defer scope.End()

	where, args := r.BuildWhereClause(ctx, filter)
	args["disabled_status"] = roomModel.StatusDisabled

	query := fmt.Sprintf(
		"UPDATE %s SET %s = (SELECT COUNT(*) FROM %s WHERE %s.%s = %s.%s AND %s.%s <> :disabled_status) %s",
		model.TableName, model.FieldQuantity,
		roomModel.TableName, roomModel.TableName, roomModel.FieldRoomTypeID, model.TableName, model.FieldID,
		roomModel.TableName, roomModel.FieldStatus,
		where,
	)

	if _, err := r.ExecRaw(ctx, sqltx, query, args); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to recalculate room type quantity: %w", err)
	}

	return nil
}
