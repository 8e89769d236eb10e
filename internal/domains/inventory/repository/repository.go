package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/inventory/model"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Hold interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Hold) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hold, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Hold, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	GetActiveTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string, stay daterange.Range, now time.Time) ([]model.Hold, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hold]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hold {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hold](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// GetActiveTx lists unexpired holds of the room type overlapping stay.
func (r *repositoryImpl) GetActiveTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string, stay daterange.Range, now time.Time) ([]model.Hold, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_hold.GetActiveTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Table: model.TableName, Field: model.FieldRoomTypeID, Operator: gDto.FilterOperatorEq, Value: roomTypeID},
			gDto.Filter{Table: model.TableName, Field: model.FieldCheckInDate, ArgName: "stay_end", Operator: gDto.FilterOperatorLess, Value: stay.End},
			gDto.Filter{Table: model.TableName, Field: model.FieldCheckOutDate, ArgName: "stay_start", Operator: gDto.FilterOperatorGreater, Value: stay.Start},
			gDto.Filter{Table: model.TableName, Field: model.FieldExpiresAt, ArgName: "now", Operator: gDto.FilterOperatorGreater, Value: now},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	holds, err := r.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active holds: %w", err)
	}

	return holds, nil
}

// DeleteExpired removes every hold that expired before now.
func (r *repositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_hold.DeleteExpired")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s <= :now", model.TableName, model.FieldExpiresAt)

	affected, err := r.ExecRaw(ctx, nil, query, map[string]any{"now": now})
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete expired holds: %w", err)
	}

	return affected, nil
}
