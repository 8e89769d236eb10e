package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/roomlog/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomLog interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.RoomLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomLog, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomLog]
}

func New(db *postgres.Connection, otel otel.Otel) RoomLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomLog](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
