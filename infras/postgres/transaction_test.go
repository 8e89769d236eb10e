package postgres_test

import (
	"context"
	"errors"
	"fmt"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/shared/failure"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name     string
		input    error
		wantCode int
		same     bool
	}{
		{
			name:     "serialization failure",
			input:    &pq.Error{Code: "40001"},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "wrapped deadlock",
			input:    fmt.Errorf("lock room type: %w", &pq.Error{Code: "40P01"}),
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "lock timeout",
			input:    &pq.Error{Code: "55P03"},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "unique violation",
			input:    &pq.Error{Code: "23505"},
			wantCode: http.StatusConflict,
		},
		{
			name:  "other pq error",
			input: &pq.Error{Code: "42P01"},
			same:  true,
		},
		{
			name:  "plain error",
			input: plain,
			same:  true,
		},
		{
			name:  "domain failure",
			input: failure.Conflict("not enough rooms available"),
			same:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postgres.MapError(tt.input)

			if tt.same {
				assert.Equal(t, tt.input, got)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(got))
		})
	}
}

type txFixture struct {
	write      sqlmock.Sqlmock
	read       sqlmock.Sqlmock
	transactor postgres.Transactor
}

func newTxFixture(t *testing.T) txFixture {
	t.Helper()

	writeDB, write, err := sqlmock.New()
	require.NoError(t, err)

	readDB, read, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = writeDB.Close()
		_ = readDB.Close()
	})

	conn := &postgres.Connection{
		Write: sqlx.NewDb(writeDB, "postgres"),
		Read:  sqlx.NewDb(readDB, "postgres"),
	}

	return txFixture{write: write, read: read, transactor: postgres.NewTransactor(conn, otelMocks.NewOtel())}
}

func disableHotel(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, "UPDATE hotels SET status = $1 WHERE id = $2", "disabled", "hotel-1")

	return err
}

func TestWithinTransaction_Commits(t *testing.T) {
	f := newTxFixture(t)

	f.write.ExpectBegin()
	f.write.ExpectExec("UPDATE hotels").WithArgs("disabled", "hotel-1").WillReturnResult(sqlmock.NewResult(0, 1))
	f.write.ExpectCommit()

	err := f.transactor.WithinTransaction(context.Background(), nil, disableHotel)

	require.NoError(t, err)
	assert.NoError(t, f.write.ExpectationsWereMet())
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	tests := []struct {
		name     string
		fnErr    error
		wantCode int
	}{
		{
			name:     "domain failure keeps its code",
			fnErr:    failure.Conflict("not enough rooms available"),
			wantCode: http.StatusConflict,
		},
		{
			name:     "serialization failure becomes transient",
			fnErr:    &pq.Error{Code: "40001"},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)

			f.write.ExpectBegin()
			f.write.ExpectExec("UPDATE hotels").WillReturnResult(sqlmock.NewResult(0, 1))
			f.write.ExpectRollback()

			err := f.transactor.WithinTransaction(context.Background(), nil, func(ctx context.Context, tx *sqlx.Tx) error {
				if err := disableHotel(ctx, tx); err != nil {
					return err
				}

				return tt.fnErr
			})

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.NoError(t, f.write.ExpectationsWereMet())
		})
	}
}

func TestWithinTransaction_RollsBackOnPanic(t *testing.T) {
	f := newTxFixture(t)

	f.write.ExpectBegin()
	f.write.ExpectRollback()

	assert.PanicsWithValue(t, "cascade exploded", func() {
		_ = f.transactor.WithinTransaction(context.Background(), nil, func(context.Context, *sqlx.Tx) error {
			panic("cascade exploded")
		})
	})

	assert.NoError(t, f.write.ExpectationsWereMet())
}

func TestWithinTransaction_BeginFails(t *testing.T) {
	f := newTxFixture(t)

	f.write.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := f.transactor.WithinTransaction(context.Background(), nil, func(context.Context, *sqlx.Tx) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to begin transaction")
	assert.False(t, called)
	assert.NoError(t, f.write.ExpectationsWereMet())
}

func TestWithinTransaction_CommitFails(t *testing.T) {
	f := newTxFixture(t)

	f.write.ExpectBegin()
	f.write.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})

	err := f.transactor.WithinTransaction(context.Background(), nil, func(context.Context, *sqlx.Tx) error {
		return nil
	})

	require.Error(t, err)
	assert.True(t, failure.Retryable(err))
	assert.NoError(t, f.write.ExpectationsWereMet())
}

func TestWithinTransaction_ReadOnlyUsesReadPool(t *testing.T) {
	f := newTxFixture(t)

	f.read.ExpectBegin()
	f.read.ExpectCommit()

	err := f.transactor.WithinTransaction(context.Background(), postgres.ReadSnapshot, func(context.Context, *sqlx.Tx) error {
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, f.read.ExpectationsWereMet())
	assert.NoError(t, f.write.ExpectationsWereMet())
}
