package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/pricing/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomPrice interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomPrice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomPrice, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomPrice, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.RoomPrice) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomPrice]
}

func New(db *postgres.Connection, otel otel.Otel) RoomPrice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomPrice](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
