package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ReadSnapshot gives a read-only view where every query sees the same snapshot.
var ReadSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

type Transactor interface {
	// WithinTransaction runs fn in one transaction, committing when fn returns nil and
	// rolling back otherwise. Read-only options are served by the read pool.
	WithinTransaction(ctx context.Context, opts *sql.TxOptions, fn TxFunc) error
}

type transactorImpl struct {
	db   *Connection
	otel otel.Otel
}

func NewTransactor(db *Connection, otel otel.Otel) Transactor {
	return &transactorImpl{
		db:   db,
		otel: otel,
	}
}

func (t *transactorImpl) WithinTransaction(ctx context.Context, opts *sql.TxOptions, fn TxFunc) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".WithinTransaction")
	defer scope.End()
	defer scope.TraceIfError(err)

	conn := t.db.Write
	if opts != nil && opts.ReadOnly {
		conn = t.db.Read
	}

	tx, err := conn.BeginTxx(ctx, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", MapError(err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return MapError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return MapError(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// MapError turns retryable postgres errors, lock timeouts included, into
// transient failures and unique violations into conflicts. Other errors are returned unchanged.
func MapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeSerializationFailure, constant.PqErrorCodeDeadlockDetected:
		log.Warn().Str("code", string(pqErr.Code)).Msg("transaction aborted by concurrent update")

		return failure.Transient("concurrent update detected, please retry") //nolint:wrapcheck
	case constant.PqErrorCodeLockNotAvailable:
		log.Warn().Str("code", string(pqErr.Code)).Msg("timed out waiting for row lock")

		return failure.Transient("room type is busy, please retry") //nolint:wrapcheck
	case constant.PqErrorCodeUniqueViolation:
		return failure.Conflict("resource already exists") //nolint:wrapcheck
	default:
		return err
	}
}
